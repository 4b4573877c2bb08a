package main

import (
	"github.com/tobyheywood/wordguess/internal/cli"
)

func main() {
	cli.Execute()
}
