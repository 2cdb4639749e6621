// SPDX-License-Identifier: MIT

package smithwaterman

// White-box bridge for smithwaterman_test.
var (
	// ExportedChoose exposes the cell selection rule.
	ExportedChoose = choose
	// ExportedParallelMinSpan exposes the wavefront dispatch threshold.
	ExportedParallelMinSpan = parallelMinSpan
)
