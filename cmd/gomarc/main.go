package main

import "gomarc/cmd/gomarc/cmd"

func main() {
	cmd.Execute()
}
