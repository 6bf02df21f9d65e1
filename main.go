package main

import "github.com/saqib40/kit-and-adapter/cmd"

func main() {
	cmd.Execute()
}
