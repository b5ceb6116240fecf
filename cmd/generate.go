package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/etzm/iscc-sum/internal"
	"github.com/etzm/iscc-sum/pkg/iscc"
	"github.com/etzm/iscc-sum/pkg/treewalk"
)

// ioReadSize is the file read chunk size, a performance knob only.
const ioReadSize = 2 * 1024 * 1024

// stdinName is the display name used when hashing the standard input stream.
const stdinName = "-"

// emitter owns the checksum output stream: stdout by default, the --output
// file when given. Error text never goes through it.
type emitter struct {
	w    *bufio.Writer
	file *os.File
	term byte
	tag  bool
}

func newEmitter(c *cli.Context) (*emitter, error) {
	e := &emitter{term: '\n', tag: c.Bool("tag")}
	if c.Bool("zero") {
		e.term = 0
	}
	if out := c.String("output"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return nil, err
		}
		e.file = f
		e.w = bufio.NewWriter(f)
	} else {
		e.w = bufio.NewWriter(os.Stdout)
	}
	return e, nil
}

func formatLine(tag bool, code, path string) string {
	if tag {
		return fmt.Sprintf("ISCC (%s) = %s", path, code)
	}
	return fmt.Sprintf("%s *%s", code, path)
}

func (e *emitter) line(code, path string) {
	e.w.WriteString(formatLine(e.tag, code, path))
	e.w.WriteByte(e.term)
}

func (e *emitter) units(units []string) {
	for _, u := range units {
		e.w.WriteString("  ")
		e.w.WriteString(u)
		e.w.WriteByte(e.term)
	}
}

func (e *emitter) raw(s string) {
	e.w.WriteString(s)
	e.w.WriteByte(e.term)
}

func (e *emitter) Close() error {
	err := e.w.Flush()
	if e.file != nil {
		if cerr := e.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// expandArg resolves one PATH argument to the files it names: itself for a
// regular file or stdin, the deterministic tree expansion for a directory.
func expandArg(arg string) ([]string, error) {
	if arg == stdinName {
		return []string{arg}, nil
	}
	info, err := os.Lstat(arg)
	if err != nil {
		return nil, err
	}
	switch {
	case info.IsDir():
		return treewalk.WalkISCC(arg)
	case info.Mode().IsRegular():
		return []string{arg}, nil
	default:
		return nil, fmt.Errorf("not a regular file or directory")
	}
}

func codeTarget(path string, wide, units bool) (*iscc.Result, error) {
	if path == stdinName {
		return iscc.CodeReader(os.Stdin, wide, units)
	}
	return iscc.CodeFile(path, wide, units)
}

// treeCode hashes every file yielded by the ISCC treewalk through a single
// processor, making the whole directory one logical object.
func treeCode(root string, wide, units bool) (*iscc.Result, error) {
	paths, err := treewalk.WalkISCC(root)
	if err != nil {
		return nil, err
	}
	p := iscc.NewSumProcessor()
	buf := make([]byte, ioReadSize)
	for _, path := range paths {
		if err := feedFile(p, path, buf); err != nil {
			return nil, err
		}
	}
	return p.Result(wide, units), nil
}

func feedFile(p *iscc.SumProcessor, path string, buf []byte) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for {
		n, err := f.Read(buf)
		if n > 0 {
			p.Update(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func runGenerate(c *cli.Context, args []string) error {
	wide := !c.Bool("narrow")
	units := c.Bool("units")

	em, err := newEmitter(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("iscc-sum: %v", err), exitError)
	}

	if c.Bool("tree") {
		return runTree(c, args, em, wide, units)
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	failed := false
	for _, arg := range args {
		targets, err := expandArg(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "iscc-sum: %s: %v\n", arg, err)
			failed = true
			continue
		}
		for _, target := range targets {
			result, err := codeTarget(target, wide, units)
			if err != nil {
				fmt.Fprintf(os.Stderr, "iscc-sum: %s: %v\n", target, err)
				failed = true
				continue
			}
			logger.Debugf("%s: hashed %s", target, internal.FormatBytes(result.Filesize))
			em.line(result.ISCC, target)
			if units {
				em.units(result.Units)
			}
		}
	}

	if err := em.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "iscc-sum: %v\n", err)
		failed = true
	}
	if failed {
		return cli.Exit("", exitError)
	}
	return nil
}

func runTree(c *cli.Context, args []string, em *emitter, wide, units bool) error {
	if len(args) != 1 {
		em.Close()
		return cli.Exit("iscc-sum: --tree requires exactly one directory argument", exitError)
	}
	root := args[0]
	info, err := os.Lstat(root)
	if err != nil {
		em.Close()
		return cli.Exit(fmt.Sprintf("iscc-sum: %s: %v", root, err), exitError)
	}
	if !info.IsDir() {
		em.Close()
		return cli.Exit(fmt.Sprintf("iscc-sum: %s: --tree requires a directory", root), exitError)
	}

	result, err := treeCode(root, wide, units)
	if err != nil {
		em.Close()
		return cli.Exit(fmt.Sprintf("iscc-sum: %s: %v", root, err), exitError)
	}

	logger.Debugf("%s: hashed %s", root, internal.FormatBytes(result.Filesize))
	display := strings.TrimSuffix(root, "/") + "/"
	em.line(result.ISCC, display)
	if units {
		em.units(result.Units)
	}
	if err := em.Close(); err != nil {
		return cli.Exit(fmt.Sprintf("iscc-sum: %v", err), exitError)
	}
	return nil
}
