package main

import "pethome/cmd/pethome/cmd"

func main() {
	cmd.Execute()
}
