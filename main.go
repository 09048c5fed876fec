package main

import "github.com/mouse-blink/intcheck/cmd"

func main() {
	cmd.Execute()
}
