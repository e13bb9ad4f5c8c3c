package main

import "github.com/iksnae/statusline/cmd"

func main() {
	cmd.Execute()
}
