package main

import (
	"os"

	"github.com/fjglira/go-restdocs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
