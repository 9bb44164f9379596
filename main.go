package main

import "github.com/csapp-labs/tshgrade/cmd"

func main() {
	cmd.Execute()
}
