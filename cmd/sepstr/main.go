package main

import (
	"os"

	"github.com/bjaus/sepstr/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
