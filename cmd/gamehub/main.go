package main

import (
	"github.com/srinix/gamehub/internal/cli"
)

func main() {
	cli.Execute()
}
