package main

import "github.com/ArnaudCalmettes/stretcher/cmd"

func main() {
	cmd.Execute()
}
