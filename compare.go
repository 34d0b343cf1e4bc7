package dirdiff

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	// DefaultBufferSize is the per-stream buffer capacity used when
	// Compare.BufferSize is 0.
	DefaultBufferSize = 32768
	// MinBufferSize is the smallest per-stream buffer capacity used.
	MinBufferSize = 16
)

// Filesystem is the part of billy.Filesystem used to read files and walk
// trees. osfs.Default and memfs implement it.
type Filesystem interface {
	billy.Basic
	billy.Dir
	billy.Symlink
}

// Compare decides whether two byte streams are equal under Mode. It never
// holds more than two buffers of BufferSize bytes, whatever the size of the
// inputs is. A zero value is valid for use and can be reused for more than
// one comparison. It must not be used concurrently.
type Compare struct {
	Mode Mode
	// Capacity of each of the two stream buffers. Tags longer than that are
	// compared byte by byte. If 0 DefaultBufferSize is used.
	BufferSize int
	// Files and Dirs are looked up in FS. If nil, the OS filesystem is used.
	FS Filesystem
	// Logs each comparison at debug level. No logging if nil.
	Logger *slog.Logger

	// Dirs stops after DifferenceLimit differences. If 0, do not stop.
	DifferenceLimit int
	// OnDifference is called by Dirs for each difference unless Dirs gets
	// its own callback.
	OnDifference DifferenceFunc
}

// Files compares the files name1 and name2 from the OS filesystem.
func Files(name1, name2 string, mode Mode) (bool, error) {
	cmpr := Compare{Mode: mode}
	return cmpr.Files(name1, name2)
}

// Files compares the files name1 and name2 from FS.
func (cmpr *Compare) Files(name1, name2 string) (bool, error) {
	fsys := cmpr.filesystem()
	f1, err := fsys.Open(name1)
	if err != nil {
		return false, OpenError{Path: name1, err: err}
	}
	defer f1.Close()
	f2, err := fsys.Open(name2)
	if err != nil {
		return false, OpenError{Path: name2, err: err}
	}
	defer f2.Close()
	return cmpr.compare(name1, f1, name2, f2)
}

// Readers compares the contents of r1 and r2. Read errors are reported as
// ReadError using the reader's Name(), if it has one.
func (cmpr *Compare) Readers(r1, r2 io.Reader) (bool, error) {
	return cmpr.compare(
		sourceName(r1, "stream 1"), r1,
		sourceName(r2, "stream 2"), r2,
	)
}

// Strings compares s1 and s2.
func (cmpr *Compare) Strings(s1, s2 string) (bool, error) {
	return cmpr.Readers(strings.NewReader(s1), strings.NewReader(s2))
}

func (cmpr *Compare) compare(n1 string, r1 io.Reader, n2 string, r2 io.Reader) (same bool, err error) {
	bsz := cmpr.bufferSize()
	b1 := newStreamBuffer(n1, r1, bsz)
	b2 := newStreamBuffer(n2, r2, bsz)
	wcmp := newComparator(cmpr.Mode, bsz)
	if log := cmpr.Logger; log != nil {
		defer func() {
			log.Debug("compared streams",
				slog.String("mode", cmpr.Mode.String()),
				slog.String("first", n1),
				slog.String("second", n2),
				slog.Int64("read1", b1.read),
				slog.Int64("read2", b2.read),
				slog.Int("fills", b1.fills+b2.fills),
				slog.Bool("same", same),
				slog.Any("error", err),
			)
		}()
	}
	for {
		if err = b1.fill(); err != nil {
			return false, err
		}
		if err = b2.fill(); err != nil {
			return false, err
		}
		if b1.n == 0 && b2.n == 0 && b1.eof && b2.eof {
			return true, nil
		}
		t1, t2 := b1.n, b2.n
		rest1, rest2, ok := wcmp.compare(b1.window(), b2.window())
		if !ok {
			return false, nil
		}
		if b1.eof && b2.eof && rest1 == 0 && rest2 == 0 {
			return true, nil
		}
		if rest1 == t1 && rest2 == t2 && !b1.canGrow() && !b2.canGrow() {
			panic("dirdiff: comparison makes no progress")
		}
		b1.retain(rest1)
		b2.retain(rest2)
	}
}

func (cmpr *Compare) bufferSize() int {
	switch {
	case cmpr.BufferSize == 0:
		return DefaultBufferSize
	case cmpr.BufferSize < MinBufferSize:
		return MinBufferSize
	}
	return cmpr.BufferSize
}

func (cmpr *Compare) filesystem() Filesystem {
	if cmpr.FS == nil {
		return osfs.Default
	}
	return cmpr.FS
}

func sourceName(r io.Reader, dflt string) string {
	if n, ok := r.(interface{ Name() string }); ok {
		return n.Name()
	}
	return dflt
}
