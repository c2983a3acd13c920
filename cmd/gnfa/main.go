package main

import "github.com/geange/gnfa/cmd/gnfa/cmd"

func main() {
	cmd.Execute()
}
