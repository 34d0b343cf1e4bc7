// Package dirdifftest compares the output of Go tests against golden files
// that may contain version control tags.
//
// Example reads the golden file testdata/TestReport.golden:
//
//	func TestReport(t *testing.T) {
//		var buf bytes.Buffer
//		writeReport(&buf)
//		Error(t, "", &buf)
//	}
//
// Golden file:
//
//	/* $Id: report.c 1.7 2004/05/11 08:15:02 ben Exp $ */
//	total: 17
//
// With the default RCSTagTolerant mode the test passes as long as the
// subject carries any $Id$ tag in place of the recorded one.
package dirdifftest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/ozbenh/dirdiff"
)

// When this environment variable is set to a regexp and the name of the current
// test matches, calls to Error or Fatal record subj as the new golden file
// instead of comparing it. E.g.
//
//	DIRDIFFTEST_RECORD=TestRecording go test .
const RecordEnv = "DIRDIFFTEST_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

func Error(t *testing.T, hint string, subj io.Reader) error {
	return defaultConfig.Error(t, hint, subj)
}

func Fatal(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Fatal(t, hint, subj)
}

func Record(t *testing.T, hint string, subj io.Reader) {
	defaultConfig.Record(t, hint, subj)
}

type RefRepo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".golden"
	NoSuffix  = "\x00"
)

// Filename puts the golden file of a test into Dir, named after the test. With
// a hint, each test gets a subdirectory with one file per hint.
func (rr RefRepo) Filename(t *testing.T, hint string) string {
	suffix := rr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(rr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(rr.Dir, t.Name(), hint)
	}
	return filepath.Join(rr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	RefFileName func(t *testing.T, hint string) string
	// Mode used to compare subjects with their golden files
	Mode            dirdiff.Mode
	RecordOverwrite bool
	// KeepSubject writes a mismatching subject next to its golden file.
	KeepSubject bool
	// Golden files are read from and recorded to FS. If nil, the OS
	// filesystem is used.
	FS dirdiff.Filesystem
}

var defaultConfig = Config{
	RefFileName:     RefRepo{Dir: GoTestdataDir}.Filename,
	Mode:            dirdiff.RCSTagTolerant,
	RecordOverwrite: false,
	KeepSubject:     true,
}

func (cfg Config) Error(t *testing.T, hint string, subj io.Reader) error {
	if recordTest(t) {
		cfg.Record(t, hint, subj)
		return nil
	}
	err := cfg.compare(t, hint, subj)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t *testing.T, hint string, subj io.Reader) {
	if recordTest(t) {
		cfg.Record(t, hint, subj)
	} else if err := cfg.compare(t, hint, subj); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t *testing.T) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("dirdifftest: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg *Config) filesystem() dirdiff.Filesystem {
	if cfg.FS == nil {
		return osfs.Default
	}
	return cfg.FS
}

func (cfg *Config) compare(t *testing.T, hint string, subj io.Reader) (err error) {
	fsys := cfg.filesystem()
	reffile := cfg.RefFileName(t, hint)
	ref, err := fsys.Open(reffile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.Logf("to record a golden file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("golden file %s does not exist", reffile)
	case err != nil:
		return err
	}
	defer ref.Close()
	cmpr := dirdiff.Compare{Mode: cfg.Mode, FS: fsys}
	if !cfg.KeepSubject {
		same, err := cmpr.Readers(ref, subj)
		if err == nil && !same {
			err = fmt.Errorf("subject differs from %s in mode %s", reffile, cfg.Mode)
		}
		return err
	}
	keepfile := strings.TrimSuffix(reffile, StdSuffix)
	k, err := util.TempFile(fsys, filepath.Dir(keepfile), filepath.Base(keepfile)+".")
	if err != nil {
		return err
	}
	defer func() {
		k.Close()
		if err == nil {
			fsys.Remove(k.Name())
		}
	}()
	same, err := cmpr.Readers(ref, io.TeeReader(subj, k))
	switch {
	case err != nil:
		return err
	case same:
		return nil
	}
	if _, err := io.Copy(k, subj); err != nil {
		return err
	}
	return fmt.Errorf("subject differs from %s in mode %s, kept in %s",
		reffile,
		cfg.Mode,
		k.Name(),
	)
}

func (cfg Config) Record(t *testing.T, hint string, subj io.Reader) {
	fsys := cfg.filesystem()
	reffile := cfg.RefFileName(t, hint)
	if _, err := fsys.Stat(reffile); !errors.Is(err, fs.ErrNotExist) && !cfg.RecordOverwrite {
		t.Fatalf("dirdifftest: golden file '%s' already exists", reffile)
	}
	if err := fsys.MkdirAll(filepath.Dir(reffile), 0777); err != nil {
		t.Fatal(err)
	}
	wr, err := fsys.Create(reffile)
	if err != nil {
		t.Fatal(err)
	}
	defer wr.Close()
	if _, err = io.Copy(wr, subj); err != nil {
		t.Error(err)
	}
	t.Errorf("dirdifftest recorder wrote: %s", reffile)
}
