package main

import "github.com/keepactive/keepactive/cmd"

func main() {
	cmd.Execute()
}
