// SPDX-License-Identifier: MIT
// Test-only bridge exposing unexported kernels to package matrix_test.

package matrix

// MinorOf_TestOnly exposes minorOf.
func MinorOf_TestOnly(a []float64, n, skipRow, skipCol int) []float64 {
	return minorOf(a, n, skipRow, skipCol)
}

// LaplaceDet_TestOnly exposes laplaceDet.
func LaplaceDet_TestOnly(a []float64, n int) float64 { return laplaceDet(a, n) }
