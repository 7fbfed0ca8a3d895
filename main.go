package main

import (
	"os"

	"github.com/dkoosis/drill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
