package main

import (
	"os"

	"github.com/vettalabs/vetta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
