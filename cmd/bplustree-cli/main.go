package main

import (
	"bplustree/cmd/bplustree-cli/cmd"
)

func main() {
	cmd.Execute()
}
