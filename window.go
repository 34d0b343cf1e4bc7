package dirdiff

import "bytes"

// window is the buffered, not yet decided part of one input stream.
type window struct {
	data  []byte
	atEnd bool
}

// A windowComparator consumes a prefix of both windows that it has proven to
// be equal and returns the lengths of the unconsumed suffixes. Once same is
// false the rest values are meaningless.
type windowComparator interface {
	compare(w1, w2 window) (rest1, rest2 int, same bool)
}

func newComparator(mode Mode, capacity int) windowComparator {
	switch mode {
	case RCSTagTolerant:
		return rcsComparator{capacity: capacity}
	case BKTagTolerant:
		return new(bkComparator)
	}
	return exactComparator{}
}

type exactComparator struct{}

func (exactComparator) compare(w1, w2 window) (int, int, bool) {
	return 0, 0, bytes.Equal(w1.data, w2.data)
}
