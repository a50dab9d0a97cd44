package main

import "mrp/cmd/cli/command"

func main() {
	command.Execute()
}
