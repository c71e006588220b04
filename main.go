package main

import (
	"os"

	"github.com/skillscape/skillscape/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
