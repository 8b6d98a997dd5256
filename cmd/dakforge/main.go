package main

import (
	"os"

	"github.com/dakforge/dakforge/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
