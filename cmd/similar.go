package cmd

import (
	"fmt"
	"math/bits"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/etzm/iscc-sum/pkg/iscc"
)

type fileCode struct {
	path     string
	rendered string
	code     *iscc.Code
}

type simMember struct {
	fc   *fileCode
	dist int
}

type simGroup struct {
	ref     *fileCode
	members []simMember
}

func hamming(a, b []byte) int {
	d := 0
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}

// groupBySimilarity clusters codes greedily in input order: each file joins
// the first group whose reference Data-Code is within threshold, otherwise it
// opens a new group as its reference.
func groupBySimilarity(codes []*fileCode, threshold int) []*simGroup {
	var groups []*simGroup
	for _, fc := range codes {
		placed := false
		for _, g := range groups {
			d := hamming(g.ref.code.DataBody, fc.code.DataBody)
			if d <= threshold {
				g.members = append(g.members, simMember{fc: fc, dist: d})
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &simGroup{ref: fc})
		}
	}
	return groups
}

func runSimilar(c *cli.Context, args []string) error {
	wide := !c.Bool("narrow")
	threshold := c.Int("threshold")

	em, err := newEmitter(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("iscc-sum: %v", err), exitError)
	}

	var codes []*fileCode
	failed := false
	for _, arg := range args {
		targets, err := expandArg(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "iscc-sum: %s: %v\n", arg, err)
			failed = true
			continue
		}
		for _, target := range targets {
			result, err := codeTarget(target, wide, false)
			if err != nil {
				fmt.Fprintf(os.Stderr, "iscc-sum: %s: %v\n", target, err)
				failed = true
				continue
			}
			code, err := iscc.ParseSumCode(result.ISCC)
			if err != nil {
				return cli.Exit(fmt.Sprintf("iscc-sum: %s: %v", target, err), exitError)
			}
			codes = append(codes, &fileCode{path: target, rendered: result.ISCC, code: code})
		}
	}

	groups := groupBySimilarity(codes, threshold)

	// singletons are suppressed; members print nearest first
	firstGroup := true
	for _, g := range groups {
		if len(g.members) == 0 {
			continue
		}
		if !firstGroup {
			em.raw("")
		}
		firstGroup = false
		sort.SliceStable(g.members, func(i, j int) bool {
			return g.members[i].dist < g.members[j].dist
		})
		em.line(g.ref.rendered, g.ref.path)
		for _, m := range g.members {
			em.raw(fmt.Sprintf("  ~%d %s", m.dist, formatLine(em.tag, m.fc.rendered, m.fc.path)))
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
