package main

import "github.com/andrescamacho/spacetraders-sdk/internal/adapters/cli"

func main() {
	cli.Execute()
}
