package main

import (
	"github.com/edalrymple/horizon/internal/commands"
)

func main() {
	commands.Execute()
}
