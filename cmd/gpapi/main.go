package main

import (
	"os"

	"github.com/globalpayments/gpapi-go/internal/cli"
)

var Version = "dev"

func main() {
	if err := cli.Execute(Version); err != nil {
		os.Exit(1)
	}
}
