package main

import "emoji-sync/cmd"

func main() {
	cmd.Execute()
}
