package main

import "github.com/rapidresponse/leadsite/cmd"

func main() {
	cmd.Execute()
}
