package dirdiff

import "bytes"

// BKMarker starts the part of a line that is ignored in BKTagTolerant mode.
const BKMarker = "BK Id: "

// bkComparator ignores everything from a BKMarker up to the end of its line.
// skip records for each stream that it is inside a marked line which was too
// long for the buffer. It then drops the line chunk by chunk until the
// newline shows up.
type bkComparator struct {
	skip [2]bool
}

func (bk *bkComparator) compare(w1, w2 window) (int, int, bool) {
	p1, p2 := w1.data, w2.data
	if bk.skip[0] || bk.skip[1] {
		p1 = bk.skipLine(0, p1, w1.atEnd)
		p2 = bk.skipLine(1, p2, w2.atEnd)
		if bk.skip[0] || bk.skip[1] {
			return len(p1), len(p2), true
		}
	}
	const mlen = len(BKMarker)
	for {
		match, i := 0, 0
		for ; i < len(p1) && i < len(p2); i++ {
			if p1[i] != p2[i] {
				return 0, 0, false
			}
			if p1[i] == BKMarker[match] {
				if match++; match == mlen {
					i++
					break
				}
			} else if p1[i] == BKMarker[0] {
				match = 1
			} else {
				match = 0
			}
		}
		p1, p2 = p1[i:], p2[i:]
		if match < mlen {
			if len(p1) == 0 && w1.atEnd || len(p2) == 0 && w2.atEnd {
				return 0, 0, len(p1) == len(p2)
			}
			// hand back the partial marker to scan it again with more data
			return len(p1) + match, len(p2) + match, true
		}
		t1 := bytes.IndexByte(p1, '\n')
		t2 := bytes.IndexByte(p2, '\n')
		if t1 >= 0 && t2 >= 0 {
			p1, p2 = p1[t1:], p2[t2:]
			continue
		}
		if t1 < 0 && w1.atEnd || t2 < 0 && w2.atEnd {
			if t1 < 0 && !w1.atEnd || t2 < 0 && !w2.atEnd {
				// One marked line ends with its stream, the other one
				// still goes on.
				bk.skip[0], bk.skip[1] = t1 < 0 && !w1.atEnd, t2 < 0 && !w2.atEnd
				return lineRest(p1, t1), lineRest(p2, t2), true
			}
			return 0, 0, lineRest(p1, t1) == lineRest(p2, t2)
		}
		if t1 < 0 && len(p1)+mlen == len(w1.data) || t2 < 0 && len(p2)+mlen == len(w2.data) {
			// The marked line fills a whole buffer. Rescanning from the
			// marker would never get further.
			bk.skip[0], bk.skip[1] = t1 < 0, t2 < 0
			return lineRest(p1, t1), lineRest(p2, t2), true
		}
		return len(p1) + mlen, len(p2) + mlen, true
	}
}

// skipLine drops the rest of a marked line from p if stream s is in skip
// state. The newline itself is kept for the byte comparison.
func (bk *bkComparator) skipLine(s int, p []byte, atEnd bool) []byte {
	if !bk.skip[s] {
		return p
	}
	if i := bytes.IndexByte(p, '\n'); i >= 0 {
		bk.skip[s] = false
		return p[i:]
	}
	if atEnd {
		bk.skip[s] = false
	}
	return p[len(p):]
}

// lineRest is the length of p from its newline at t on, or 0 if there is none.
func lineRest(p []byte, t int) int {
	if t < 0 {
		return 0
	}
	return len(p) - t
}
