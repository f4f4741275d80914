package main

import (
	"os"

	"github.com/l-donovan/parsnip/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
