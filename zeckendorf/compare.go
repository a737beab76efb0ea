package zeckendorf

// Cmp compares x and y and returns:
//
//   -1 if x <  y
//    0 if x == y
//   +1 if x >  y
//
// A longer normalized number is always larger, since the top term F(k)
// exceeds any sum of non-adjacent smaller terms. Equal lengths are ordered by
// the highest differing term.
func (x *Number) Cmp(y *Number) int {
	return x.view().Compare(y.view())
}

// Equal reports whether x and y are the same number.
func (x *Number) Equal(y *Number) bool {
	return x.view().Equal(y.view())
}

// Less reports whether x < y.
func (x *Number) Less(y *Number) bool {
	return x.Cmp(y) < 0
}
