// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"fmt"
	"io"
	"strings"
)

// Region delimiter printed around the aligned strands.
const regionMark = '|'

// Render writes the two-line block for p:
//
//	<pad><s1 prefix>|<Top>|<s1 suffix>
//	<pad><s2 prefix>|<Bottom>|<s2 suffix>
//
// The shorter prefix is left-padded with spaces so both regions start in the
// same column. Suffixes start right after the residues the strand consumed
// (gap symbols are not counted).
func Render(w io.Writer, p AlignedPair, s1, s2 string) error {
	if p.Start.I < 0 || p.Start.J < 0 || p.Start.J > len(s1) || p.Start.I > len(s2) {
		return fmt.Errorf("Render(%d,%d): %w", p.Start.I, p.Start.J, ErrOutOfRange)
	}
	var sb strings.Builder
	writeLine(&sb, s1, p.Top, p.Start.J, p.Start.I-p.Start.J)
	writeLine(&sb, s2, p.Bottom, p.Start.I, p.Start.J-p.Start.I)
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeLine writes one sequence line; pad <= 0 writes no padding.
func writeLine(sb *strings.Builder, seq, strand string, anchor, pad int) {
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(seq[:anchor])
	sb.WriteByte(regionMark)
	sb.WriteString(strand)
	sb.WriteByte(regionMark)
	if rest := anchor + residues(strand); rest < len(seq) {
		sb.WriteString(seq[rest:])
	}
	sb.WriteByte('\n')
}

// residues counts non-gap symbols in strand.
func residues(strand string) int {
	return len(strand) - strings.Count(strand, string(GapSymbol))
}

// RenderResult writes every alignment block under a numbered header, then
// the summary line with the optimal score.
func RenderResult(w io.Writer, res Result, s1, s2 string) error {
	for k, p := range res.Alignments {
		if _, err := fmt.Fprintf(w, "\n\nSolution n%d:\n\n", k+1); err != nil {
			return err
		}
		if err := Render(w, p, s1, s2); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nValue of alignment is: %d!\n", res.MaxScore)

	return err
}
