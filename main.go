package main

import (
	"os"

	"github.com/chaesu44438/emotion-theater/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
