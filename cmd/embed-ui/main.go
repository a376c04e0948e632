package main

import "embed-ui/cmd"

func main() {
	cmd.Execute()
}
