package main

import (
	"os"

	"mikes-grill/grillctl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
