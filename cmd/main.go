package cmd

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/etzm/iscc-sum/internal"
)

var logger = internal.GetLogger("isccsum_cmd")

// Exit codes. 0 means success, 1 means a verification mismatch or an
// unreadable verification target, 2 means a usage, I/O or checksum-format
// error (including a failed file among several during generation).
const (
	exitOK     = 0
	exitVerify = 1
	exitError  = 2
)

func Main(args []string) error {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	app := &cli.App{
		Name:                 "iscc-sum",
		Usage:                "Compute and verify ISCC checksums for files and directory trees.",
		Version:              internal.Version(),
		Copyright:            "Apache License 2.0",
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		ArgsUsage:            "[PATH...]",
		Flags:                globalFlags(),
		Action:               run,
	}

	setupLogging()
	return app.Run(reorderOptions(app, args))
}

func setupLogging() {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		internal.EnableLogColor()
	} else {
		internal.DisableLogColor()
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "read checksums from the PATHs and verify them",
		},
		&cli.BoolFlag{
			Name:  "tag",
			Usage: "create a BSD-style checksum output",
		},
		&cli.BoolFlag{
			Name:    "zero",
			Aliases: []string{"z"},
			Usage:   "end each output line with NUL, not newline",
		},
		&cli.BoolFlag{
			Name:  "narrow",
			Usage: "generate the narrow 2x64-bit format (default: 2x128-bit wide)",
		},
		&cli.BoolFlag{
			Name:  "units",
			Usage: "include individual Data-Code and Instance-Code units in output",
		},
		&cli.BoolFlag{
			Name:  "similar",
			Usage: "group files by similarity based on Data-Code hamming distance",
		},
		&cli.IntFlag{
			Name:  "threshold",
			Value: 12,
			Usage: "maximum hamming distance for similarity matching",
		},
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "treat a single directory as one logical object",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "don't print OK for successfully verified files",
		},
		&cli.BoolFlag{
			Name:  "status",
			Usage: "don't output anything, status code shows success",
		},
		&cli.BoolFlag{
			Name:    "warn",
			Aliases: []string{"w"},
			Usage:   "warn about improperly formatted checksum lines",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "exit non-zero for improperly formatted checksum lines",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write output to `PATH` instead of stdout",
		},
	}
}

func run(c *cli.Context) error {
	args := c.Args().Slice()

	if c.Bool("similar") && c.Bool("check") {
		return cli.Exit("iscc-sum: --similar cannot be used with -c/--check", exitError)
	}
	if c.Bool("similar") && len(args) < 2 {
		return cli.Exit("iscc-sum: --similar requires at least 2 files to compare", exitError)
	}
	if c.Int("threshold") < 0 {
		return cli.Exit("iscc-sum: --threshold must not be negative", exitError)
	}

	switch {
	case c.Bool("check"):
		return runVerify(c, args)
	case c.Bool("similar"):
		return runSimilar(c, args)
	default:
		return runGenerate(c, args)
	}
}

// reorderOptions moves intermixed flags ahead of the positional PATH
// arguments so `iscc-sum *.txt --similar` works the same as
// `iscc-sum --similar *.txt`.
func reorderOptions(app *cli.App, args []string) []string {
	var newArgs = []string{args[0]}
	var others []string
	flags := append(app.Flags, cli.VersionFlag, cli.HelpFlag)
	for i := 1; i < len(args); i++ {
		option := args[i]
		if option == "--" {
			others = append(others, args[i+1:]...)
			break
		}
		if ok, hasValue := isFlag(flags, option); ok {
			newArgs = append(newArgs, option)
			if hasValue {
				i++
				if i >= len(args) {
					logger.Fatalf("option %s requires value", option)
				}
				newArgs = append(newArgs, args[i])
			}
		} else {
			others = append(others, option)
		}
	}
	return append(newArgs, others...)
}

func isFlag(flags []cli.Flag, option string) (bool, bool) {
	if !strings.HasPrefix(option, "-") || option == "-" {
		return false, false
	}
	// --V or -V work the same
	option = strings.TrimLeft(option, "-")
	for _, flag := range flags {
		_, isBool := flag.(*cli.BoolFlag)
		for _, name := range flag.Names() {
			if option == name || strings.HasPrefix(option, name+"=") {
				return true, !isBool && !strings.Contains(option, "=")
			}
		}
	}
	return false, false
}
