package main

import "github.com/mpcruz/clipmark/internal/cli"

func main() {
	cli.Main()
}
