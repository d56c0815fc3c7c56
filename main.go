// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"zkc/internal/field"
	"zkc/internal/flat"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: zkc <witness-file> [curve]")
		os.Exit(1)
	}
	commonlog.Configure(1, nil)

	path := os.Args[1]

	curve := field.BN254
	if len(os.Args) > 2 {
		var err error
		curve, err = field.CurveFromName(os.Args[2])
		if err != nil {
			color.Red("%s", err)
			os.Exit(1)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}
	defer file.Close()

	witness, err := flat.ReadWitness(file, curve)
	if err != nil {
		color.Red("Invalid witness: %s", err)
		os.Exit(1)
	}

	if err := flat.WriteWitness(os.Stdout, witness); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}

	color.Green("✅ %d witness values over %s", len(witness), curve)
}
