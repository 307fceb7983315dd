package main

import "dj-launcher/cmd"

func main() {
	cmd.Execute()
}
