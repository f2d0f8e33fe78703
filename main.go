package main

import "frameshift/cmd"

func main() {
	cmd.Execute()
}
