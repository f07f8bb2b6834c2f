package main

import (
	"os"

	"github.com/trknhr/ripeness/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
