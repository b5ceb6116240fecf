package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/etzm/iscc-sum/internal"
	"github.com/etzm/iscc-sum/pkg/iscc"
)

// checksumEntry is one parsed line of a checksum list.
type checksumEntry struct {
	code *iscc.Code
	path string
}

// parseChecksumLine recognizes both output forms, auto-detected per line:
//
//	<ISCC> *<path>
//	ISCC (<path>) = <ISCC>
func parseChecksumLine(line string) (*checksumEntry, bool) {
	if rest, ok := strings.CutPrefix(line, "ISCC ("); ok {
		i := strings.LastIndex(rest, ") = ")
		if i < 0 {
			return nil, false
		}
		code, err := iscc.ParseSumCode(rest[i+len(") = "):])
		if err != nil {
			return nil, false
		}
		return &checksumEntry{code: code, path: rest[:i]}, true
	}
	if strings.HasPrefix(line, iscc.CodePrefix) {
		rendered, path, ok := strings.Cut(line, " *")
		if !ok || path == "" {
			return nil, false
		}
		code, err := iscc.ParseSumCode(rendered)
		if err != nil {
			return nil, false
		}
		return &checksumEntry{code: code, path: path}, true
	}
	return nil, false
}

// verifyState accumulates counters across all checksum lists.
type verifyState struct {
	em         *emitter
	quiet      bool
	status     bool
	warn       bool
	strict     bool
	mismatched int
	unreadable int
	badFormat  int
}

func runVerify(c *cli.Context, args []string) error {
	em, err := newEmitter(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("iscc-sum: %v", err), exitError)
	}
	st := &verifyState{
		em:     em,
		quiet:  c.Bool("quiet"),
		status: c.Bool("status"),
		warn:   c.Bool("warn"),
		strict: c.Bool("strict"),
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	for _, listPath := range args {
		if err := st.verifyList(listPath); err != nil {
			em.Close()
			return cli.Exit(fmt.Sprintf("iscc-sum: %s: %v", listPath, err), exitError)
		}
	}

	if err := em.Close(); err != nil {
		return cli.Exit(fmt.Sprintf("iscc-sum: %v", err), exitError)
	}

	if !st.status {
		if st.unreadable > 0 {
			fmt.Fprintf(os.Stderr, "iscc-sum: WARNING: %s could not be read\n",
				plural(st.unreadable, "listed file", "listed files"))
		}
		if st.mismatched > 0 {
			fmt.Fprintf(os.Stderr, "iscc-sum: WARNING: %s did NOT match\n",
				plural(st.mismatched, "computed checksum", "computed checksums"))
		}
	}

	if st.strict && st.badFormat > 0 {
		return cli.Exit("", exitError)
	}
	if st.mismatched > 0 || st.unreadable > 0 {
		return cli.Exit("", exitVerify)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func (st *verifyState) verifyList(listPath string) error {
	var r io.Reader
	baseDir := "."
	if listPath == stdinName {
		r = os.Stdin
	} else {
		f, err := os.Open(listPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
		baseDir = filepath.Dir(listPath)
	}

	valid := 0
	lineno := 0
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 64*1024), 1024*1024)
	for scan.Scan() {
		lineno++
		line := strings.TrimSuffix(scan.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "  ") {
			// unit continuation lines from --units output
			continue
		}
		entry, ok := parseChecksumLine(line)
		if !ok {
			if strings.HasPrefix(line, "#") && !st.warn && !st.strict {
				continue
			}
			st.badFormat++
			if st.warn || st.strict {
				fmt.Fprintf(os.Stderr, "iscc-sum: %s: %d: improperly formatted ISCC checksum line\n",
					listPath, lineno)
			}
			continue
		}
		valid++
		st.verifyEntry(baseDir, entry)
	}
	if err := scan.Err(); err != nil {
		return err
	}
	if valid == 0 {
		return internal.ErrNoChecksums
	}
	return nil
}

func (st *verifyState) verifyEntry(baseDir string, entry *checksumEntry) {
	target := entry.path
	if target != stdinName && !filepath.IsAbs(target) {
		target = filepath.Join(baseDir, target)
	}

	// the recorded subtype decides which width is recomputed
	wide := entry.code.Wide

	var result *iscc.Result
	var err error
	if strings.HasSuffix(entry.path, "/") {
		result, err = treeCode(target, wide, false)
	} else {
		result, err = iscc.CodeFile(target, wide, false)
	}
	if err != nil {
		st.unreadable++
		logger.Debugf("verification target %s: %v", target, err)
		if !st.status {
			st.em.raw(fmt.Sprintf("%s: FAILED open or read", entry.path))
		}
		return
	}

	if result.ISCC != entry.code.String() {
		st.mismatched++
		if !st.status {
			st.em.raw(fmt.Sprintf("%s: FAILED", entry.path))
		}
		return
	}
	if !st.quiet && !st.status {
		st.em.raw(fmt.Sprintf("%s: OK", entry.path))
	}
}
