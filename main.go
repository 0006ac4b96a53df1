package main

import (
	"os"

	"github.com/Elekcktra/cars-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
