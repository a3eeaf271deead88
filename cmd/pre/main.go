package main

import (
	"os"

	"github.com/pre-lang/go-pre/cmd/pre/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
