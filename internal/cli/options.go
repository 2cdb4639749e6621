// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/swalign/scoring"
)

// ErrUsage marks command-line mistakes (exit code 2).
var ErrUsage = errors.New("usage error")

// maxPositionals is s1, s2 and the gap penalty.
const maxPositionals = 3

// Options is the parsed command line. Fields left unset (the Has* flags are
// false) are prompted for on stdin by Run.
type Options struct {
	S1      string
	S2      string
	Gap     string // raw text; parsed by ParseGapPenalty
	Matrix  string
	Workers int
	Timing  bool

	HasS1, HasS2, HasGap bool
}

// NewFlagSet returns the flag set used by Run, with a usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [SEQ1 SEQ2 [GAP]]\n", name)
		_, _ = fmt.Fprintln(out, "\nMissing sequences and gap penalty are read from stdin.")
		_, _ = fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
	}

	return fs
}

// ParseArgs registers flags on fs and parses argv.
// Positionals fill whichever of SEQ1, SEQ2 and GAP the flags left unset, in
// that order.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	fs.StringVar(&o.S1, "s1", "", "first amino acid sequence")
	fs.StringVar(&o.S2, "s2", "", "second amino acid sequence")
	fs.StringVar(&o.Gap, "gap", "", "linear gap penalty (integer; positive values are negated)")
	fs.StringVar(&o.Matrix, "matrix", scoring.DefaultTableName,
		"substitution table: "+strings.Join(scoring.Names(), ", "))
	fs.IntVar(&o.Workers, "workers", 1, "goroutines for the grid fill (1 = sequential)")
	fs.BoolVar(&o.Timing, "time", false, "print the elapsed alignment time")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s1":
			o.HasS1 = true
		case "s2":
			o.HasS2 = true
		case "gap":
			o.HasGap = true
		}
	})

	pos := fs.Args()
	if len(pos) > maxPositionals {
		return o, fmt.Errorf("%w: at most %d positional arguments, got %d", ErrUsage, maxPositionals, len(pos))
	}
	slots := []struct {
		dst *string
		has *bool
	}{
		{&o.S1, &o.HasS1},
		{&o.S2, &o.HasS2},
		{&o.Gap, &o.HasGap},
	}
	for _, sl := range slots {
		if len(pos) == 0 {
			break
		}
		if !*sl.has {
			*sl.dst, *sl.has = pos[0], true
			pos = pos[1:]
		}
	}
	if len(pos) > 0 {
		return o, fmt.Errorf("%w: unexpected argument %q", ErrUsage, pos[0])
	}

	if o.Workers < 0 {
		return o, fmt.Errorf("%w: -workers must be >= 0, got %d", ErrUsage, o.Workers)
	}
	if _, err := scoring.ByName(o.Matrix); err != nil {
		return o, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return o, nil
}

// prompt writes label to out and reads one line from in, trimmed.
// A final line without newline is accepted; an exhausted reader is an error.
func prompt(in lineReader, out io.Writer, label string) (string, error) {
	if _, err := io.WriteString(out, label); err != nil {
		return "", err
	}
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading %q: %w", strings.TrimSpace(label), err)
	}

	return strings.TrimSpace(line), nil
}

// lineReader is satisfied by *bufio.Reader.
type lineReader interface {
	ReadString(delim byte) (string, error)
}
