package main

import (
	"os"

	"github.com/terravet/terravet/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
