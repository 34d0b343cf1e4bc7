package dirdiff

// MaxTagLen bounds the length of a tag up to its closing '$'. A candidate
// without a closing '$' within MaxTagLen bytes is not a tag.
const MaxTagLen = 512

// minTagLen is the length of the shortest tag "$Id$".
const minTagLen = 4

// RCS keywords whose tags are ignored. Log must stay at index 0.
var rcsKeywords = [...]string{
	"Log",
	"Id",
	"Revision",
	"Source",
	"Author",
	"Date",
	"State",
	"Header",
}

const logKeyword = 0

type tagKind uint8

const (
	notATag tagKind = iota
	incompleteTag
	completeTag
)

// tagClass is the result of looking at a candidate tag. Only a completeTag
// has a length.
type tagClass struct {
	kind   tagKind
	length int
}

var (
	noTag   = tagClass{kind: notATag}
	moreTag = tagClass{kind: incompleteTag}
)

func tagOf(n int) tagClass { return tagClass{kind: completeTag, length: n} }

// tagLength classifies the text in p which starts with '$' and is at least
// minTagLen bytes long. capacity is the size of the buffer p lives in. A
// candidate that still is incomplete when p fills the whole buffer can never
// complete and is not a tag.
func tagLength(p []byte, capacity int) tagClass {
	tc := scanTag(p)
	if tc.kind == incompleteTag && len(p) >= capacity {
		return noTag
	}
	return tc
}

func scanTag(p []byte) tagClass {
	n := len(p)
	kw, j := -1, 0
	for i, t := range rcsKeywords {
		j = 1
		for k := 0; k < len(t); k, j = k+1, j+1 {
			if j >= n {
				return moreTag
			}
			if p[j] != t[k] {
				break
			}
			if k == len(t)-1 {
				kw = i
			}
		}
		if kw >= 0 {
			j = 1 + len(t)
			break
		}
	}
	switch {
	case kw < 0:
		return noTag
	case j >= n:
		return moreTag
	case p[j] == '$':
		return tagOf(j + 1)
	case p[j] != ':':
		return noTag
	}
	// the closing '$' must be within the first MaxTagLen bytes
	end := min(n, MaxTagLen)
	for j++; j < end; j++ {
		switch p[j] {
		case '\n':
			return noTag
		case '$':
			if kw != logKeyword {
				return tagOf(j + 1)
			}
			return logEntries(p, j)
		}
	}
	if n >= MaxTagLen {
		return noTag
	}
	return moreTag
}

// logEntries extends a Log tag whose closing '$' is at p[j] over the history
// lines that follow it. Each of them starts with a comment leader " *" (but
// not " */") or "#". The tag ends at the first line without a leader.
func logEntries(p []byte, j int) tagClass {
	n := len(p)
	for {
		for j++; j < n && p[j] != '\n'; j++ {
		}
		if j++; j >= n {
			return moreTag
		}
		l := n - j
		switch {
		case l >= 3 && p[j] == ' ' && p[j+1] == '*' && p[j+2] != '/':
			continue
		case p[j] == '#':
			continue
		case l < 3 && p[j] == ' ' && (l < 2 || p[j+1] == '*'):
			// might still become a " *" leader
			return moreTag
		}
		return tagOf(j)
	}
}
