package treewalk

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ISCCIgnoreFile is the ignore-file name honored by ISCC tree hashing.
const ISCCIgnoreFile = ".isccignore"

// isccMetaSuffix marks sidecar files that are always excluded from tree
// hashing, whitelisted or not.
const isccMetaSuffix = ".iscc.json"

// Ruleset is an ordered set of gitignore patterns accumulated from the walk
// root down. Later patterns override earlier ones.
type Ruleset struct {
	patterns   []gitignore.Pattern
	whitelists int
}

// NewRuleset returns an empty Ruleset.
func NewRuleset() *Ruleset {
	return &Ruleset{}
}

// AddLines parses gitignore-style lines scoped to the directory given by
// domain (the walk-root-relative path segments of the directory holding the
// lines). Blank lines and comments are dropped.
func (r *Ruleset) AddLines(lines []string, domain []string) {
	for _, line := range lines {
		if strings.HasPrefix(line, "#") || len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if strings.HasPrefix(line, "!") {
			r.whitelists++
		}
		r.patterns = append(r.patterns, gitignore.ParsePattern(line, domain))
	}
}

// AddFile parses the ignore file at path, scoped to domain. A missing file is
// not an error.
func (r *Ruleset) AddFile(path string, domain []string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	var lines []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	if err := scan.Err(); err != nil {
		return err
	}
	r.AddLines(lines, domain)
	return nil
}

// Clone returns an independent copy sharing no pattern slice with r.
func (r *Ruleset) Clone() *Ruleset {
	return &Ruleset{
		patterns:   append([]gitignore.Pattern(nil), r.patterns...),
		whitelists: r.whitelists,
	}
}

// Excluded reports whether the walk-root-relative path is filtered out. The
// last matching pattern wins, as in git.
func (r *Ruleset) Excluded(rel []string, isDir bool) bool {
	for i := len(r.patterns) - 1; i >= 0; i-- {
		switch r.patterns[i].Match(rel, isDir) {
		case gitignore.Exclude:
			return true
		case gitignore.Include:
			return false
		}
	}
	return false
}

// HasWhitelists reports whether any negation pattern has been added.
func (r *Ruleset) HasWhitelists() bool {
	return r.whitelists > 0
}

// WalkIgnore traverses the tree under root like Walk while honoring
// cascading ignore files of the given name. Rules accumulate from root
// downward and deeper rules take precedence. An excluded directory is still
// entered when it carries its own ignore file or when whitelist rules are in
// scope, so re-included descendants are not lost; its excluded files stay
// filtered either way.
func WalkIgnore(root, ignoreFileName string, base *Ruleset) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	rules := NewRuleset()
	if base != nil {
		rules = base.Clone()
	}
	var paths []string
	if err := walkIgnoreDir(root, root, ignoreFileName, rules, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func relSegments(root, path string) []string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}

func walkIgnoreDir(root, dir, ignoreFileName string, inherited *Ruleset, paths *[]string) error {
	rules := inherited.Clone()
	domain := relSegments(root, dir)
	if err := rules.AddFile(filepath.Join(dir, ignoreFileName), domain); err != nil {
		return err
	}

	entries, err := Listdir(dir)
	if err != nil {
		return err
	}
	var ignoreFiles, files, dirs []Entry
	for _, e := range entries {
		switch {
		case e.IsDir:
			dirs = append(dirs, e)
		case isIgnoreName(e.Name):
			ignoreFiles = append(ignoreFiles, e)
		default:
			files = append(files, e)
		}
	}
	for _, e := range ignoreFiles {
		if !rules.Excluded(relSegments(root, e.Path), false) {
			*paths = append(*paths, e.Path)
		}
	}
	for _, e := range files {
		if !rules.Excluded(relSegments(root, e.Path), false) {
			*paths = append(*paths, e.Path)
		}
	}
	for _, e := range dirs {
		if rules.Excluded(relSegments(root, e.Path), true) {
			// Descend anyway if re-inclusion below is possible.
			hasIgnore, err := hasIgnoreFile(e.Path, ignoreFileName)
			if err != nil {
				return err
			}
			if !hasIgnore && !rules.HasWhitelists() {
				continue
			}
		}
		if err := walkIgnoreDir(root, e.Path, ignoreFileName, rules, paths); err != nil {
			return err
		}
	}
	return nil
}

func hasIgnoreFile(dir, name string) (bool, error) {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// WalkISCC traverses the tree under root for tree hashing: .isccignore rules
// apply, and *.iscc.json sidecar files are excluded unconditionally.
func WalkISCC(root string) ([]string, error) {
	paths, err := WalkIgnore(root, ISCCIgnoreFile, nil)
	if err != nil {
		return nil, err
	}
	out := paths[:0]
	for _, p := range paths {
		if strings.HasSuffix(filepath.Base(p), isccMetaSuffix) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
