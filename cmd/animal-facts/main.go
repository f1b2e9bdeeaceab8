package main

import (
	"github.com/ytget/animal-facts/internal/cli"
)

var version = "dev"

func main() {
	cli.Execute(version)
}
