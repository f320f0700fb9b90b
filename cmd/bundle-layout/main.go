package main

import "bundle-layout/internal/cli"

func main() {
	cli.Execute()
}
