package main

import (
	"os"

	"github.com/appmeta/appmeta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
