package main

import "github.com/notargets/gospline/cmd"

func main() {
	cmd.Execute()
}
