// SPDX-License-Identifier: MIT

// Package smithwaterman computes local alignments of two residue sequences
// with the Smith–Waterman dynamic program, a substitution table and a linear
// gap penalty, and enumerates every alignment that reaches the optimal score.
//
// 🚀 What is Smith–Waterman?
//
//	A local aligner: it finds the highest-scoring pair of substrings of s1
//	and s2, allowing gaps. Running scores are floored at zero, so a poor
//	prefix never drags down a good region further on.
//
// Algorithm Outline:
//  1. Let n = len(s1), m = len(s2). Allocate an (m+1)x(n+1) grid; row 0 and
//     column 0 are score 0 / Stop.
//  2. For i = 1..m, j = 1..n (row-major):
//     diag = score(s1[j-1], s2[i-1]) + H[i-1][j-1]
//     left = H[i][j-1] + gap      (consumes s1 only)
//     up   = H[i-1][j] + gap      (consumes s2 only)
//     pick Diagonal if diag >= left && diag >= up, else Left if
//     left >= up, else Up; a negative pick is stored as 0 / Stop.
//  3. Scan the grid row-major for the global maximum, collecting every tied
//     cell in discovery order (Solutions).
//  4. From each tied cell follow directions back to a Stop cell (Traceback).
//
// ✨ Key features:
//   - flat row-major grid (offset = i*cols + j), two buffers, no per-row churn
//   - exact, documented tie-break: Diagonal > Left > Up
//   - all co-optimal alignments, not just the first
//   - optional anti-diagonal wavefront fill (WithWorkers) with identical output
//   - residue pairs are resolved once up front, so an unknown residue fails
//     before any grid is allocated
//
// ⚙️ Usage:
//
//	res, err := smithwaterman.Align("HEAGAWGHEE", "PAWHEAE", -8, scoring.Blosum50())
//	if err != nil {
//	  // errors.Is(err, scoring.ErrUnknownResidue), ErrEmptySequence, ...
//	}
//	_ = smithwaterman.RenderResult(os.Stdout, res, "HEAGAWGHEE", "PAWHEAE")
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m) (scores + directions)
package smithwaterman
