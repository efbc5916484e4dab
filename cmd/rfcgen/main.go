package main

import (
	"os"

	"github.com/randalmurphal/rfcgen/cmd/rfcgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
