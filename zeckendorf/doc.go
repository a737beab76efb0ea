// Package zeckendorf provides arbitrary precision natural numbers stored in
// Zeckendorf (Fibonacci) form.
//
// A number is a sequence of bits where bit i (counting from the least
// significant end) contributes the Fibonacci number F(i+2):
//
//  | bit   | ... | 7  | 6  | 5  | 4 | 3 | 2 | 1 | 0 |
//  |-------|-----|----|----|----|---|---|---|---|---|
//  | value | ... | 34 | 21 | 13 | 8 | 5 | 3 | 2 | 1 |
//  |-------|-----|----|----|----|---|---|---|---|---|
//
// Zeckendorf's theorem says every natural number has exactly one such
// sequence with no two adjacent set bits. Every Number observable through
// this package is in that normalized form:
//
//  1. The sequence has at least one bit (zero is a single 0 bit).
//  2. The most significant bit is set unless the number is zero.
//  3. No two adjacent bits are set.
//
// Examples
//
//  | value | bits       | terms      |
//  |-------|------------|------------|
//  | 0     | 0          |            |
//  | 1     | 1          | 1          |
//  | 2     | 10         | 2          |
//  | 3     | 100        | 3          |
//  | 4     | 101        | 3 + 1      |
//  | 10    | 10010      | 8 + 2      |
//  | 100   | 1000010100 | 89 + 8 + 3 |
//  |-------|------------|------------|
//
// Arithmetic is done directly on the bits. Adding a single term may leave two
// adjacent bits set, which are then collapsed upward using
// F(k) + F(k+1) = F(k+2), and a doubled term is split with
// 2F(k) = F(k+1) + F(k-2). The conversion helpers to uint64 and big.Int exist
// for output only.
//
// Bitwise operations
//
// And, Or and Xor combine the term bitmaps position by position, not the
// binary digits of the value. For example 1100 normalizes to 10000, so
//
//  1001 & 1100 = 0
//  1100 | 11   = 10100
//  1001 ^ 1010 = 11 = 100
//
// Lsh moves every term up by n positions. This changes which Fibonacci number
// each bit addresses, so it is not a multiplication of the value by any fixed
// factor:
//
//  101 << 3 = 101000 (4 becomes 18)
//
// Usage
//
// Number follows the math/big conventions: methods set the receiver to the
// result and return it, and receiver and operands may alias.
//
//  a := zeckendorf.NewUint64(10)
//  b := zeckendorf.MustParse("101")
//  sum := new(zeckendorf.Number).Add(a, b) // a + b
//  a.Add(a, a)                             // a += a
//
// A Number must not be copied by value; use Set or Clone.
//
// Building with the zeckdebug tag enables internal precondition checks that
// panic with an ErrPrecondition error.
package zeckendorf
