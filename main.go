package main

import (
	"fmt"
	"os"

	"github.com/etzm/iscc-sum/cmd"
)

func main() {
	if err := cmd.Main(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "iscc-sum: %v\n", err)
		os.Exit(2)
	}
}
