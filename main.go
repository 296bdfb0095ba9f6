package main

import "github.com/uidump/uidump/cmd"

func main() {
	cmd.Execute()
}
