package main

import "github.com/mouse-blink/hierwrap/cmd"

func main() {
	cmd.Execute()
}
