package main

import "bfctl/internal/cli"

func main() {
	cli.Execute()
}
