package main

import (
	"os"

	"github.com/xiam/sexptree/cmd/sexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
