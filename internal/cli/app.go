// SPDX-License-Identifier: MIT

// Package cli is the command-line front end of the aligner: it gathers the
// two sequences and the gap penalty (flags, positionals or stdin prompts),
// normalizes the penalty, runs the engine and prints every optimal alignment.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/swalign/scoring"
	"github.com/katalvlaran/swalign/smithwaterman"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Prompts used when a value was not given on the command line.
const (
	promptS1  = "First amino acid sequence: "
	promptS2  = "Second amino acid sequence: "
	promptGap = "Gap penalty: "
)

const progName = "smithwaterman"

// Run executes one alignment request and returns the process exit code.
// Prompts and results go to stdout, diagnostics to stderr.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := NewFlagSet(progName)
	fs.SetOutput(stderr)
	o, err := ParseArgs(fs, argv)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitUsage
	}

	if err := fillMissing(&o, bufio.NewReader(stdin), stdout); err != nil {
		errorf(stderr, "%v", err)

		return ExitError
	}

	gap, err := ParseGapPenalty(o.Gap)
	if err != nil {
		errorf(stderr, "Error. %v", err)

		return ExitError
	}
	table, err := scoring.ByName(o.Matrix)
	if err != nil {
		errorf(stderr, "%v", err)

		return ExitUsage
	}

	start := time.Now()
	res, err := smithwaterman.Align(o.S1, o.S2, gap, table, smithwaterman.WithWorkers(o.Workers))
	if err != nil {
		reportAlignError(stderr, table.Name(), err)

		return ExitError
	}
	if err := smithwaterman.RenderResult(stdout, res, o.S1, o.S2); err != nil {
		errorf(stderr, "writing output: %v", err)

		return ExitError
	}
	if o.Timing {
		_, _ = fmt.Fprintf(stdout, "--- %f seconds ---\n", time.Since(start).Seconds())
	}

	return ExitOK
}

// fillMissing prompts, in order, for every value the command line omitted.
func fillMissing(o *Options, in *bufio.Reader, out io.Writer) error {
	steps := []struct {
		has   bool
		dst   *string
		label string
	}{
		{o.HasS1, &o.S1, promptS1},
		{o.HasS2, &o.S2, promptS2},
		{o.HasGap, &o.Gap, promptGap},
	}
	for _, st := range steps {
		if st.has {
			*st.dst = strings.TrimSpace(*st.dst)
			continue
		}
		v, err := prompt(in, out, st.label)
		if err != nil {
			return err
		}
		*st.dst = v
	}

	return nil
}

// reportAlignError maps engine errors to user-facing messages.
func reportAlignError(w io.Writer, table string, err error) {
	switch {
	case errors.Is(err, scoring.ErrUnknownResidue):
		errorf(w, "Error. Amino acid combination not in %s matrix.\n"+
			"Make sure you used valid capital letters.\n(%v)", table, err)
	case errors.Is(err, smithwaterman.ErrEmptySequence):
		errorf(w, "Error. Both amino acid sequences must be non-empty.")
	default:
		errorf(w, "%v", err)
	}
}

// errorf writes one prefixed diagnostic line.
func errorf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, progName+": "+format+"\n", args...)
}
