package main

import (
	"os"

	"github.com/li2990555-pixel/patapal11111/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
