package main

import "github.com/querykit/querykit/cmd"

func main() {
	cmd.Execute()
}
