package main

import "github.com/mcoot/wordmove/internal/cli"

func main() {
	cli.Execute()
}
