// SPDX-License-Identifier: MIT

// Package scoring provides symmetric residue-pair substitution tables for
// protein sequence alignment.
//
// What:
//
//   - Table is the lookup contract used by the alignment engine:
//     Score(a, b) returns the substitution score for an unordered pair.
//   - PairTable stores the lower triangle of a symmetric matrix, so the
//     lookup succeeds for (a,b) and (b,a) interchangeably by construction.
//   - Blosum50 (default) and Blosum62 cover the capital one-letter amino
//     acid codes ARNDCQEGHILKMFPSTWYV plus the ambiguity codes B and Z.
//
// Errors:
//
//   - ErrUnknownResidue: a pair has no entry in the table. Returned as a
//     *UnknownResidueError carrying the offending symbols.
//   - ErrUnknownTable: ByName was given a name no table is registered under.
//   - ErrMalformedTable: NewPairTable was given inconsistent rows.
//
// Complexity:
//
//   - Score: O(1), no allocations on success.
//   - NewPairTable: O(k²) for an alphabet of k residues.
//
// Example:
//
//	t := scoring.Blosum50()
//	s, err := t.Score('H', 'W') // s == -3
package scoring
