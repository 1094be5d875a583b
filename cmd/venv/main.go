package main

import "martianoff/venv/cmd/venv/commands"

func main() {
	commands.Execute()
}
