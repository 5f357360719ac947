package main

import (
	"os"

	"github.com/msto63/commons/cmd/commons/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
