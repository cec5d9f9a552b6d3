package main

import "github.com/samsaffron/markplus/cmd"

func main() {
	cmd.Execute()
}
