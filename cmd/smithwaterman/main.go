// SPDX-License-Identifier: MIT

// Command smithwaterman prints every optimal Smith–Waterman local alignment
// of two amino acid sequences.
//
//	smithwaterman -s1 HEAGAWGHEE -s2 PAWHEAE -gap 8
//	smithwaterman HEAGAWGHEE PAWHEAE 8
//	smithwaterman            # prompts for both sequences and the gap penalty
package main

import (
	"os"

	"github.com/katalvlaran/swalign/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
