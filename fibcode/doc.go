// Package fibcode provides a self-delimiting bit stream of natural numbers
// using Fibonacci coding.
//
// A value v is coded by writing the Zeckendorf terms of v+1 least significant
// first and then one extra 1 bit. Normalized Zeckendorf form never has two
// adjacent set bits, so the first 11 in the stream always ends a codeword and
// no length prefix is needed. The +1 makes room for zero, whose own form has
// no set bit to close the codeword.
//
//  | v | v+1 | Zeckendorf(v+1) | Codeword |
//  |---|-----|-----------------|----------|
//  | 0 | 1   | 1               | 11       |
//  | 1 | 2   | 10              | 011      |
//  | 2 | 3   | 100             | 0011     |
//  | 3 | 4   | 101             | 1011     |
//  | 4 | 5   | 1000            | 00011    |
//  | 5 | 6   | 1001            | 10011    |
//  |---|-----|-----------------|----------|
//
// Codewords are packed most significant bit first into bytes. Closing the
// Encoder pads the final byte with 0 bits; a Decoder reports io.EOF when only
// such padding remains.
//
// Example
//
// The values 0, 1, 2 and 3 encode to two bytes:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------|-----------|-----------|
//  | 1 . 1 | 0 . 1 . 1 | 0 . 0 . 1 | 0xd9
//  |---|---------------|-----------|
//  | 1 | 1 . 0 . 1 . 1 | 0 . 0 . 0 | 0xd8
//  |---|---------------|-----------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// The first byte holds the codewords for 0 and 1 and the first three bits of
// the codeword for 2. The second byte holds the last bit of that codeword,
// then the codeword for 3, then three bits of padding.
package fibcode
