package dirdifftest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozbenh/dirdiff"
)

func TestFatal_Example(t *testing.T) {
	const subject = `/* $Id: server.log 1.12 2023/02/01 07:00:00 ben Exp $ */
Jun 29 20:58:11.112 INFO  [thread1] create localization dir:test1/test.xCuf/l10n
Jun 29 20:58:11.113 INFO  [thread2] load state from file:test1/test.xCuf/bcplus.json
Jun 29 20:58:11.125 DEBUG [thread1] clearing maps
`
	Fatal(t, "", strings.NewReader(subject))
}

func TestRefRepo_Filename(t *testing.T) {
	rr := RefRepo{Dir: "td"}
	assert.Equal(t, filepath.Join("td", t.Name()+".golden"), rr.Filename(t, ""))
	assert.Equal(t, filepath.Join("td", t.Name(), "a.golden"), rr.Filename(t, "a"))
	assert.Equal(t, filepath.Join("td", t.Name(), "a.golden"), rr.Filename(t, "a.golden"))
	rr.Suffix = NoSuffix
	assert.Equal(t, filepath.Join("td", t.Name()), rr.Filename(t, ""))
	assert.Equal(t, filepath.Join("td", t.Name(), "a.txt"), rr.Filename(t, "a.txt"))
}

func TestConfig_compare(t *testing.T) {
	const golden = "# $Id: x 1.1 $\nline\n"
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "golden/x.golden", []byte(golden), 0o644))
	cfg := Config{
		RefFileName: func(*testing.T, string) string { return "golden/x.golden" },
		Mode:        dirdiff.RCSTagTolerant,
		KeepSubject: true,
		FS:          mfs,
	}
	t.Run("match", func(t *testing.T) {
		err := cfg.compare(t, "", strings.NewReader("# $Id: x 1.2 $\nline\n"))
		require.NoError(t, err)
		es, err := mfs.ReadDir("golden")
		require.NoError(t, err)
		assert.Len(t, es, 1)
	})
	t.Run("keep subject", func(t *testing.T) {
		const subj = "# $Id: x 1.2 $\nother line\nand more\n"
		err := cfg.compare(t, "", strings.NewReader(subj))
		require.ErrorContains(t, err, "kept in")
		es, err := mfs.ReadDir("golden")
		require.NoError(t, err)
		require.Len(t, es, 2)
		for _, e := range es {
			if e.Name() == "x.golden" {
				continue
			}
			kept, err := util.ReadFile(mfs, filepath.Join("golden", e.Name()))
			require.NoError(t, err)
			assert.Equal(t, subj, string(kept))
			require.NoError(t, mfs.Remove(filepath.Join("golden", e.Name())))
		}
	})
	t.Run("exact", func(t *testing.T) {
		cfg := cfg
		cfg.Mode, cfg.KeepSubject = dirdiff.Exact, false
		err := cfg.compare(t, "", strings.NewReader("# $Id: x 1.2 $\nline\n"))
		assert.ErrorContains(t, err, "subject differs")
	})
	t.Run("no golden file", func(t *testing.T) {
		cfg := cfg
		cfg.RefFileName = func(*testing.T, string) string { return "golden/none" }
		err := cfg.compare(t, "", strings.NewReader(golden))
		assert.ErrorContains(t, err, "does not exist")
	})
}
