package main

import "grimoire/cmd"

func main() {
	cmd.Execute()
}
