package main

import (
	"os"

	"github.com/hidenorly/aws-bedrock-playground/internal/cli"
)

func main() {
	os.Exit(cli.Review(os.Args[1:]))
}
