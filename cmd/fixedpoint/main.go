package main

import "github.com/calebcase/fixedpoint/internal/cli"

func main() {
	cli.Execute()
}
