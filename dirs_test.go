package dirdiff

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrees(t *testing.T) billy.Filesystem {
	mfs := memfs.New()
	files := map[string]string{
		"v1/a.c":        logA,
		"v2/a.c":        logB,
		"v1/b.txt":      "same\n",
		"v2/b.txt":      "same\n",
		"v1/only1.txt":  "1\n",
		"v2/only2.txt":  "2\n",
		"v1/kind":       "file\n",
		"v2/kind/file":  "file\n",
		"v1/sub/x.c":    "$Id: x.c 1.1 $\nx\n",
		"v2/sub/x.c":    "$Id: x.c 1.22 $\ny\n",
		"v1/sub/deep/z": "BK Id: 1\n",
		"v2/sub/deep/z": "BK Id: 2\n",
	}
	for name, content := range files {
		require.NoError(t, util.WriteFile(mfs, name, []byte(content), 0o644))
	}
	require.NoError(t, mfs.Symlink("a.c", "v1/link"))
	require.NoError(t, mfs.Symlink("b.txt", "v2/link"))
	return mfs
}

func TestCompare_Dirs(t *testing.T) {
	mfs := testTrees(t)
	collect := func(mode Mode, limit int) (diffs []Difference, n int) {
		cmpr := Compare{Mode: mode, FS: mfs, DifferenceLimit: limit}
		n, err := cmpr.Dirs("v1", "v2", func(d Difference) bool {
			diffs = append(diffs, d)
			return false
		})
		require.NoError(t, err)
		return diffs, n
	}
	t.Run("rcs", func(t *testing.T) {
		diffs, n := collect(RCSTagTolerant, 0)
		assert.Equal(t, []Difference{
			{"kind", KindMismatch},
			{"link", LinkDiffers},
			{"only1.txt", OnlyInFirst},
			{"only2.txt", OnlyInSecond},
			{"sub/x.c", ContentDiffers},
			{"sub/deep/z", ContentDiffers},
		}, diffs)
		assert.Equal(t, len(diffs), n)
	})
	t.Run("exact", func(t *testing.T) {
		diffs, _ := collect(Exact, 0)
		require.NotEmpty(t, diffs)
		assert.Equal(t, Difference{"a.c", ContentDiffers}, diffs[0])
	})
	t.Run("bk", func(t *testing.T) {
		diffs, _ := collect(BKTagTolerant, 0)
		assert.NotContains(t, diffs, Difference{"sub/deep/z", ContentDiffers})
		assert.Contains(t, diffs, Difference{"a.c", ContentDiffers})
	})
	t.Run("limit", func(t *testing.T) {
		diffs, n := collect(RCSTagTolerant, 2)
		assert.Equal(t, 2, n)
		assert.Len(t, diffs, 2)
	})
	t.Run("abort", func(t *testing.T) {
		calls := 0
		cmpr := Compare{FS: mfs, OnDifference: func(Difference) bool {
			calls++
			return true
		}}
		n, err := cmpr.Dirs("v1", "v2", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 1, calls)
	})
	t.Run("same tree", func(t *testing.T) {
		cmpr := Compare{FS: mfs}
		n, err := cmpr.Dirs("v1", "v1", nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
	t.Run("missing dir", func(t *testing.T) {
		cmpr := Compare{FS: mfs}
		_, err := cmpr.Dirs("v1", "v3", nil)
		assert.ErrorContains(t, err, `read dir "v3"`)
	})
}
