package main

import "github.com/vquang/sheetops/internal/cli"

func main() {
	cli.Execute()
}
