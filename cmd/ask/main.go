package main

import (
	"os"

	"github.com/hidenorly/aws-bedrock-playground/internal/cli"
)

func main() {
	os.Exit(cli.Ask(os.Args[1:]))
}
