package main

import "github.com/ascent-cms/cmd"

func main() {
	cmd.Execute()
}
