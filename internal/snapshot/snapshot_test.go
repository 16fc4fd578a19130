package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chmouel/diff-folders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under root. A path
// ending in "/" creates an empty directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o750))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newRoots(t *testing.T, oldFiles, newFiles map[string]string) (string, string) {
	t.Helper()
	base := t.TempDir()
	oldRoot := filepath.Join(base, "old")
	newRoot := filepath.Join(base, "new")
	require.NoError(t, os.MkdirAll(oldRoot, 0o750))
	require.NoError(t, os.MkdirAll(newRoot, 0o750))
	writeTree(t, oldRoot, oldFiles)
	writeTree(t, newRoot, newFiles)
	return oldRoot, newRoot
}

// summary maps relative key to status for easy assertions.
func summary(res *Result) map[string]models.Status {
	out := make(map[string]models.Status, len(res.Entries))
	for _, e := range res.Entries {
		out[e.Key] = e.Status
	}
	return out
}

func TestDiffDisjointTrees(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{"a.txt": "a", "b.txt": "b"},
		map[string]string{"c.txt": "c", "d.txt": "d"},
	)

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, map[string]models.Status{
		"a.txt": models.StatusDeleted,
		"b.txt": models.StatusDeleted,
		"c.txt": models.StatusNew,
		"d.txt": models.StatusNew,
	}, summary(res))

	for _, e := range res.Entries {
		switch e.Status {
		case models.StatusDeleted:
			assert.True(t, filepath.Dir(e.Path) == res.OldRoot, "deleted entry %s should come from old root", e.Path)
		case models.StatusNew:
			assert.True(t, filepath.Dir(e.Path) == res.NewRoot, "new entry %s should come from new root", e.Path)
		case models.StatusModified, models.StatusNormal:
			t.Fatalf("unexpected status %s", e.Status)
		}
	}
}

func TestDiffIdenticalAndModified(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{"same.txt": "same", "changed.txt": "1\n2\n3", "sub/same.txt": "x", "sub/len.txt": "ab"},
		map[string]string{"same.txt": "same", "changed.txt": "1\nX\n3", "sub/same.txt": "x", "sub/len.txt": "abc"},
	)

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, map[string]models.Status{
		"changed.txt": models.StatusModified,
		"sub/len.txt": models.StatusModified,
	}, summary(res))
	require.Len(t, res.Entries, 2)

	for _, e := range res.Entries {
		assert.True(t, strings.HasPrefix(e.Path, res.NewRoot+string(filepath.Separator)), "modified entries use the new-side path")
	}
}

func TestDiffNeverListsNormal(t *testing.T) {
	files := map[string]string{"a": "1", "d/b": "2", "d/e/c": "3"}
	oldRoot, newRoot := newRoots(t, files, files)

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Zero(t, res.Entries.Counts().Total())
}

func TestDiffDeterministic(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{"z": "1", "m/a": "1", "m/b": "2", "gone/x": "x", "k": "k"},
		map[string]string{"z": "2", "m/a": "1", "m/c": "3", "fresh/y": "y", "k": "K"},
	)

	first, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)
	second, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Entries, second.Entries)
	for i := 1; i < len(first.Entries); i++ {
		assert.Less(t, first.Entries[i-1].Path, first.Entries[i].Path)
	}
}

func TestDiffPrunesDeletedDirectory(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{"dir/f.txt": "f"},
		map[string]string{},
	)

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "dir", res.Entries[0].Key)
	assert.Equal(t, models.StatusDeleted, res.Entries[0].Status)
	assert.True(t, res.Entries[0].IsDir)
}

func TestDiffPrunesNewDirectoryWithInterleavedSiblings(t *testing.T) {
	// "dir-x" and "dir.txt" sort between "dir" and "dir/..." byte-wise.
	oldRoot, newRoot := newRoots(t,
		map[string]string{"keep.txt": "k"},
		map[string]string{
			"keep.txt":        "k",
			"dir/a/b/c.txt":   "c",
			"dir/z.txt":       "z",
			"dir-x":           "x",
			"dir.txt":         "t",
			"dir/empty/":      "",
			"other/deep/f.go": "package f",
		},
	)

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, map[string]models.Status{
		"dir":     models.StatusNew,
		"dir-x":   models.StatusNew,
		"dir.txt": models.StatusNew,
		"other":   models.StatusNew,
	}, summary(res))
}

func TestDiffTypeChange(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{"thing": "file"},
		map[string]string{"thing/inner.txt": "dir now"},
	)

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, map[string]models.Status{
		"thing":           models.StatusModified,
		"thing/inner.txt": models.StatusNew,
	}, summary(res))
}

func TestDiffSymlinkedDirectory(t *testing.T) {
	oldRoot, newRoot := newRoots(t, nil, map[string]string{"real/a.txt": "a"})
	require.NoError(t, os.Symlink("real", filepath.Join(newRoot, "link")))

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, map[string]models.Status{
		"link": models.StatusNew,
		"real": models.StatusNew,
	}, summary(res))
	for _, e := range res.Entries {
		assert.True(t, e.IsDir, "%s should be a directory", e.Key)
	}
}

func TestWalkDanglingSymlink(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Symlink("nowhere", filepath.Join(root, "broken")))

	entries := Walk(root, nil)
	require.Contains(t, entries, "broken")
	assert.False(t, entries["broken"].IsDir)
}

func TestDiffIgnorePatterns(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{".git/HEAD": "a", "src/a.go": "1", "build.log": "x"},
		map[string]string{".git/HEAD": "b", "src/a.go": "2", "build.log": "y", "src/b.log": "z"},
	)

	res, err := Diff(oldRoot, newRoot, Options{Ignore: []string{".git", "*.log", "**/*.log"}})
	require.NoError(t, err)

	assert.Equal(t, map[string]models.Status{
		"src/a.go": models.StatusModified,
	}, summary(res))
}

func TestDiffInvalidIgnorePattern(t *testing.T) {
	oldRoot, newRoot := newRoots(t, nil, nil)
	_, err := Diff(oldRoot, newRoot, Options{Ignore: []string{"["}})
	require.Error(t, err)
}

func TestDiffUnreadableFileExcluded(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of permissions")
	}
	oldRoot, newRoot := newRoots(t,
		map[string]string{"locked.txt": "old", "ok.txt": "1"},
		map[string]string{"locked.txt": "new", "ok.txt": "2"},
	)
	locked := filepath.Join(newRoot, "locked.txt")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o600) })

	res, err := Diff(oldRoot, newRoot, Options{})
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Status{"ok.txt": models.StatusModified}, summary(res))
}

func TestDiffUnresolvableRoot(t *testing.T) {
	existing := t.TempDir()
	_, err := Diff(filepath.Join(existing, "missing"), existing, Options{})
	require.Error(t, err)

	file := filepath.Join(existing, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	_, err = Diff(existing, file, Options{})
	require.Error(t, err)
}

func TestDiffCanonicalizesRoots(t *testing.T) {
	oldRoot, newRoot := newRoots(t,
		map[string]string{"a": "1"},
		map[string]string{"a": "2"},
	)
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(newRoot, link))

	res, err := Diff(oldRoot+string(filepath.Separator), link+string(filepath.Separator), Options{})
	require.NoError(t, err)

	want, err := Canonicalize(newRoot)
	require.NoError(t, err)
	assert.Equal(t, want, res.NewRoot)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, filepath.Join(want, "a"), res.Entries[0].Path)
}

func TestDiffReportsProgress(t *testing.T) {
	oldRoot, newRoot := newRoots(t, map[string]string{"a": "1"}, map[string]string{"a": "1"})

	var got []int
	_, err := Diff(oldRoot, newRoot, Options{Progress: func(p int) { got = append(got, p) }})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 80, 100}, got)
}

func TestPruneKeepsUnrelatedEntries(t *testing.T) {
	entries := []models.ClassifiedEntry{
		{Entry: models.Entry{Path: "/n/a", IsDir: true}, Status: models.StatusNew},
		{Entry: models.Entry{Path: "/n/a-b"}, Status: models.StatusNew},
		{Entry: models.Entry{Path: "/n/a/x"}, Status: models.StatusNew},
		{Entry: models.Entry{Path: "/n/ab/x"}, Status: models.StatusModified},
		{Entry: models.Entry{Path: "/n/m", IsDir: true}, Status: models.StatusModified},
		{Entry: models.Entry{Path: "/n/m/y"}, Status: models.StatusNew},
	}

	got := Prune(entries)
	paths := make([]string, 0, len(got))
	for _, e := range got {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"/n/a", "/n/a-b", "/n/ab/x", "/n/m", "/n/m/y"}, paths)
}

func TestCounts(t *testing.T) {
	list := List{
		{Status: models.StatusNew},
		{Status: models.StatusNew},
		{Status: models.StatusModified},
		{Status: models.StatusDeleted},
	}
	c := list.Counts()
	assert.Equal(t, Counts{New: 2, Modified: 1, Deleted: 1}, c)
	assert.Equal(t, 4, c.Total())
}
