// Package main is the entry point for bank-report CLI.
package main

import (
	"os"

	"github.com/pigeonworks-llc/bank-report/cmd/bank-report/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
