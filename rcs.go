package dirdiff

import "bytes"

// rcsComparator treats RCS keyword tags as equal whatever their content is.
type rcsComparator struct {
	capacity int
}

func (rc rcsComparator) compare(w1, w2 window) (int, int, bool) {
	p1, p2 := w1.data, w2.data
	for {
		i := 0
		for ; i < len(p1) && i < len(p2); i++ {
			if p1[i] != p2[i] {
				return 0, 0, false
			}
			if p1[i] == '$' {
				break
			}
		}
		p1, p2 = p1[i:], p2[i:]
		if len(p1) < minTagLen && !w1.atEnd || len(p2) < minTagLen && !w2.atEnd {
			break
		}
		if len(p1) < minTagLen || len(p2) < minTagLen {
			// near the end of one or both streams
			return 0, 0, bytes.Equal(p1, p2)
		}
		if p1[1] != p2[1] || p1[2] != p2[2] {
			return 0, 0, false
		}
		t1 := rc.classify(p1, w1.atEnd)
		t2 := noTag
		if t1.kind != notATag {
			t2 = rc.classify(p2, w2.atEnd)
		}
		if t1.kind == notATag || t2.kind == notATag {
			// '$' and the two bytes checked above
			p1, p2 = p1[3:], p2[3:]
			continue
		}
		if t1.kind == incompleteTag || t2.kind == incompleteTag {
			break
		}
		p1, p2 = p1[t1.length:], p2[t2.length:]
		if len(p1) == 0 || len(p2) == 0 {
			break
		}
	}
	return len(p1), len(p2), true
}

// classify is tagLength with the rule that a tag can't complete once its
// stream has ended.
func (rc rcsComparator) classify(p []byte, atEnd bool) tagClass {
	tc := tagLength(p, rc.capacity)
	if tc.kind == incompleteTag && atEnd {
		return noTag
	}
	return tc
}
