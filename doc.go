// SPDX-License-Identifier: MIT

// Package swalign is a small, dependency-light toolkit for local alignment
// of protein sequences with the Smith–Waterman algorithm.
//
// 🚀 What is in here?
//
//	scoring/           symmetric substitution tables (BLOSUM50, BLOSUM62)
//	smithwaterman/     grid fill, co-optimal traceback, text rendering
//	cmd/smithwaterman  command-line front end (flags or stdin prompts)
//
// ✨ Why?
//
//   - Every optimal alignment, not just the first one found
//   - Deterministic, documented tie-break (Diagonal > Left > Up)
//   - Flat row-major grid, optional wavefront-parallel fill
//   - Pure Go – no cgo
//
// Quick example:
//
//	res, _ := smithwaterman.Align("HEAGAWGHEE", "PAWHEAE", -8, scoring.Blosum50())
//	// res.MaxScore == 28
//	// AWGHE
//	// AW-HE
//
//	go get github.com/katalvlaran/swalign
package swalign
