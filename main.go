package main

import "github.com/hugoduncan/mcp-tasks/cmd"

func main() {
	cmd.Execute()
}
