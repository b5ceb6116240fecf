package treewalk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRuleset_LastMatchWins(t *testing.T) {
	r := NewRuleset()
	r.AddLines([]string{"*.log", "!important.log"}, nil)

	assert.True(t, r.Excluded([]string{"debug.log"}, false))
	assert.False(t, r.Excluded([]string{"important.log"}, false))
	assert.False(t, r.Excluded([]string{"notes.txt"}, false))
	assert.True(t, r.HasWhitelists())
}

func TestRuleset_CommentsAndBlanks(t *testing.T) {
	r := NewRuleset()
	r.AddLines([]string{"# comment", "", "   ", "*.tmp"}, nil)

	assert.True(t, r.Excluded([]string{"x.tmp"}, false))
	assert.False(t, r.Excluded([]string{"# comment"}, false))
	assert.False(t, r.HasWhitelists())
}

func TestRuleset_DomainScoping(t *testing.T) {
	r := NewRuleset()
	r.AddLines([]string{"*.log"}, []string{"sub"})

	assert.True(t, r.Excluded([]string{"sub", "debug.log"}, false))
	assert.False(t, r.Excluded([]string{"debug.log"}, false))
}

func TestRuleset_Clone(t *testing.T) {
	r := NewRuleset()
	r.AddLines([]string{"*.tmp"}, nil)
	c := r.Clone()
	c.AddLines([]string{"*.log"}, nil)

	assert.True(t, c.Excluded([]string{"a.log"}, false))
	assert.False(t, r.Excluded([]string{"a.log"}, false))
}

func TestWalkIgnore_Basic(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".gitignore"), "*.tmp\n*.log\n")
	touch(t, filepath.Join(root, "keep.txt"))
	touch(t, filepath.Join(root, "temp.tmp"))
	touch(t, filepath.Join(root, "debug.log"))

	paths, err := WalkIgnore(root, ".gitignore", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "keep.txt"}, relNames(t, root, paths))
}

func TestWalkIgnore_DirectoryExclusion(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".gitignore"), "build/\nnode_modules/\n")
	assert.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0o755))
	touch(t, filepath.Join(root, "src", "main.go"))
	assert.NoError(t, os.Mkdir(filepath.Join(root, "build"), 0o755))
	touch(t, filepath.Join(root, "build", "output.bin"))
	assert.NoError(t, os.Mkdir(filepath.Join(root, "node_modules"), 0o755))
	touch(t, filepath.Join(root, "node_modules", "package.json"))

	paths, err := WalkIgnore(root, ".gitignore", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "src/main.go"}, relNames(t, root, paths))
}

func TestWalkIgnore_Cascading(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".gitignore"), "*.tmp\n")
	assert.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0o755))
	write(t, filepath.Join(root, "src", ".gitignore"), "*.log\n")
	touch(t, filepath.Join(root, "root.txt"))
	touch(t, filepath.Join(root, "root.tmp"))
	touch(t, filepath.Join(root, "src", "main.go"))
	touch(t, filepath.Join(root, "src", "debug.log"))
	touch(t, filepath.Join(root, "src", "temp.tmp"))

	paths, err := WalkIgnore(root, ".gitignore", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		".gitignore",
		"root.txt",
		"src/.gitignore",
		"src/main.go",
	}, relNames(t, root, paths))
}

func TestWalkIgnore_EmptyIgnoreFile(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".gitignore"), "")
	touch(t, filepath.Join(root, "file1.txt"))
	touch(t, filepath.Join(root, "file2.log"))

	paths, err := WalkIgnore(root, ".gitignore", nil)
	assert.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestWalkIgnore_WithBaseRuleset(t *testing.T) {
	root := t.TempDir()
	base := NewRuleset()
	base.AddLines([]string{"*.bak"}, nil)
	write(t, filepath.Join(root, ".gitignore"), "*.tmp\n")
	touch(t, filepath.Join(root, "keep.txt"))
	touch(t, filepath.Join(root, "temp.tmp"))
	touch(t, filepath.Join(root, "backup.bak"))

	paths, err := WalkIgnore(root, ".gitignore", base)
	assert.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "keep.txt"}, relNames(t, root, paths))

	// the caller's ruleset is not mutated by the walk
	assert.False(t, base.Excluded([]string{"temp.tmp"}, false))
}

func TestWalkIgnore_OtherIgnoreFilesAreRegular(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".gitignore"), "*.tmp\n")
	write(t, filepath.Join(root, ".customignore"), "*.log\n")
	touch(t, filepath.Join(root, "keep.txt"))
	touch(t, filepath.Join(root, "temp.tmp"))
	touch(t, filepath.Join(root, "debug.log"))

	paths, err := WalkIgnore(root, ".gitignore", nil)
	assert.NoError(t, err)
	// .customignore carries no rules here, so *.log survives
	assert.Equal(t,
		[]string{".customignore", ".gitignore", "debug.log", "keep.txt"},
		relNames(t, root, paths))
}

// TestWalkIgnore_WhitelistedDescendant checks that a directory excluded by a
// parent rule is still descended when a deeper ignore file re-includes one of
// its files.
func TestWalkIgnore_WhitelistedDescendant(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "build/\n")
	assert.NoError(t, os.Mkdir(filepath.Join(root, "build"), 0o755))
	write(t, filepath.Join(root, "build", ".isccignore"), "!keep.bin\n")
	touch(t, filepath.Join(root, "build", "keep.bin"))
	touch(t, filepath.Join(root, "build", "drop.bin"))
	touch(t, filepath.Join(root, "top.txt"))

	paths, err := WalkIgnore(root, ".isccignore", nil)
	assert.NoError(t, err)
	names := relNames(t, root, paths)
	assert.Contains(t, names, "build/keep.bin")
	assert.Contains(t, names, "top.txt")
	assert.NotContains(t, names, "build/drop.bin")
}

func TestWalkIgnore_ExcludedDirWithoutWhitelistIsSkipped(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "build/\n")
	assert.NoError(t, os.Mkdir(filepath.Join(root, "build"), 0o755))
	touch(t, filepath.Join(root, "build", "drop.bin"))

	paths, err := WalkIgnore(root, ".isccignore", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{".isccignore"}, relNames(t, root, paths))
}

func TestWalkISCC_SidecarsNeverYielded(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "data.txt"))
	touch(t, filepath.Join(root, "meta.iscc.json"))
	assert.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	touch(t, filepath.Join(root, "sub", "deep.iscc.json"))
	touch(t, filepath.Join(root, "sub", "payload.bin"))
	// even a whitelist cannot bring sidecars back
	write(t, filepath.Join(root, ".isccignore"), "!*.iscc.json\n")

	paths, err := WalkISCC(root)
	assert.NoError(t, err)
	assert.Equal(t,
		[]string{".isccignore", "data.txt", "sub/payload.bin"},
		relNames(t, root, paths))
}

func TestWalkISCC_HonorsIgnoreRules(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "*.tmp\n")
	touch(t, filepath.Join(root, "keep.txt"))
	touch(t, filepath.Join(root, "scratch.tmp"))

	paths, err := WalkISCC(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{".isccignore", "keep.txt"}, relNames(t, root, paths))
}
