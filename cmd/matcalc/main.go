// SPDX-License-Identifier: MIT

// Command matcalc evaluates dense-matrix operations on matrix documents.
//
//	matcalc det a.yaml
//	matcalc mul a.yaml b.json --format text --precision 4
//	matcalc resize a.yaml --rows 3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
