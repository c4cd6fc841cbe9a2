package main

import "github.com/xvierd/ringdown/cmd"

func main() {
	cmd.Execute()
}
