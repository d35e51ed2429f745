package main

import "github.com/blockfolio/tetris-cli/internal/cmd"

func main() {
	cmd.Execute()
}
