package main

import "github.com/featherlane/henhouse-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
