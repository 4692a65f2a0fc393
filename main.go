package main

import "comic99/cmd"

func main() {
	cmd.Execute()
}
