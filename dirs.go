package dirdiff

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// DifferenceKind tells how an entry of two compared trees differs.
type DifferenceKind int

const (
	OnlyInFirst DifferenceKind = iota + 1
	OnlyInSecond
	// One entry is a directory, file or symlink and the other is not.
	KindMismatch
	// Both are files that are not equal under the Compare.Mode.
	ContentDiffers
	// Both are symlinks with different targets.
	LinkDiffers
)

func (k DifferenceKind) String() string {
	switch k {
	case OnlyInFirst:
		return "only in first"
	case OnlyInSecond:
		return "only in second"
	case KindMismatch:
		return "kind mismatch"
	case ContentDiffers:
		return "content differs"
	case LinkDiffers:
		return "link differs"
	}
	return fmt.Sprintf("DifferenceKind(%d)", int(k))
}

// Difference is an entry that differs between two trees. Path is relative to
// the compared directories.
type Difference struct {
	Path string
	Kind DifferenceKind
}

// DifferenceFunc is called for each difference found by Compare.Dirs.
type DifferenceFunc func(d Difference) (abort bool)

type entryKind int

const (
	fileEntry entryKind = iota
	dirEntry
	linkEntry
)

func kindOf(fi os.FileInfo) entryKind {
	switch {
	case fi.IsDir():
		return dirEntry
	case fi.Mode()&os.ModeSymlink != 0:
		return linkEntry
	}
	return fileEntry
}

// dirPair is a pending pair of directories, rel is relative to the roots.
type dirPair struct {
	rel      string
	islsNext *dirPair
}

// ListNext to implement intrusive singly linked list
func (dp *dirPair) ListNext() islist.Node {
	if dp.islsNext == nil {
		return nil
	}
	return dp.islsNext
}

// SetListNext to implement intrusive singly linked list
func (dp *dirPair) SetListNext(n islist.Node) {
	if n == nil {
		dp.islsNext = nil
	} else {
		dp.islsNext = n.(*dirPair)
	}
}

// Dirs compares the trees below dir1 and dir2 in breadth-first order. Files
// present in both trees are compared with Files. Each difference is passed to
// onDiff, or to OnDifference if onDiff is nil. Dirs returns the number of
// differences found until the walk ended or was aborted.
func (cmpr *Compare) Dirs(dir1, dir2 string, onDiff DifferenceFunc) (diffs int, err error) {
	if onDiff == nil {
		onDiff = cmpr.OnDifference
	}
	fsys := cmpr.filesystem()
	report := func(rel string, kind DifferenceKind) (stop bool) {
		diffs++
		d := Difference{Path: rel, Kind: kind}
		if cmpr.Logger != nil {
			cmpr.Logger.Debug("tree difference",
				slog.String("path", rel),
				slog.String("kind", kind.String()),
			)
		}
		if onDiff != nil && onDiff(d) {
			return true
		}
		return cmpr.DifferenceLimit > 0 && diffs >= cmpr.DifferenceLimit
	}
	queue := islist.New(&dirPair{})
	for queue.Len() > 0 {
		dp := queue.Front().(*dirPair)
		queue.Drop(1)
		es1, err := cmpr.readDir(dir1, dp.rel)
		if err != nil {
			return diffs, err
		}
		es2, err := cmpr.readDir(dir2, dp.rel)
		if err != nil {
			return diffs, err
		}
		for len(es1) > 0 || len(es2) > 0 {
			var e1, e2 os.FileInfo
			switch {
			case len(es2) == 0 || len(es1) > 0 && es1[0].Name() < es2[0].Name():
				e1, es1 = es1[0], es1[1:]
			case len(es1) == 0 || es2[0].Name() < es1[0].Name():
				e2, es2 = es2[0], es2[1:]
			default:
				e1, es1 = es1[0], es1[1:]
				e2, es2 = es2[0], es2[1:]
			}
			var kind DifferenceKind
			var rel string
			switch {
			case e2 == nil:
				rel, kind = fsys.Join(dp.rel, e1.Name()), OnlyInFirst
			case e1 == nil:
				rel, kind = fsys.Join(dp.rel, e2.Name()), OnlyInSecond
			default:
				rel = fsys.Join(dp.rel, e1.Name())
				if kind, err = cmpr.entries(dir1, dir2, rel, kindOf(e1), kindOf(e2)); err != nil {
					return diffs, err
				}
				if kind == 0 && e1.IsDir() {
					if queue.Len() == 0 {
						queue = islist.New(&dirPair{rel: rel})
					} else {
						queue.PushBack(&dirPair{rel: rel})
					}
				}
			}
			if kind != 0 && report(rel, kind) {
				return diffs, nil
			}
		}
	}
	return diffs, nil
}

// entries compares two entries with the same relative path rel. It returns 0
// if they don't differ (yet, for directories).
func (cmpr *Compare) entries(dir1, dir2, rel string, k1, k2 entryKind) (DifferenceKind, error) {
	fsys := cmpr.filesystem()
	p1, p2 := fsys.Join(dir1, rel), fsys.Join(dir2, rel)
	switch {
	case k1 != k2:
		return KindMismatch, nil
	case k1 == dirEntry:
		return 0, nil
	case k1 == linkEntry:
		l1, err := fsys.Readlink(p1)
		if err != nil {
			return 0, fmt.Errorf("readlink %q: %w", p1, err)
		}
		l2, err := fsys.Readlink(p2)
		if err != nil {
			return 0, fmt.Errorf("readlink %q: %w", p2, err)
		}
		if l1 != l2 {
			return LinkDiffers, nil
		}
		return 0, nil
	}
	same, err := cmpr.Files(p1, p2)
	switch {
	case err != nil:
		return 0, err
	case !same:
		return ContentDiffers, nil
	}
	return 0, nil
}

func (cmpr *Compare) readDir(root, rel string) ([]os.FileInfo, error) {
	fsys := cmpr.filesystem()
	dir := fsys.Join(root, rel)
	es, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].Name() < es[j].Name() })
	return es, nil
}
