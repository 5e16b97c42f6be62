package main

import (
	"dhwani/cmd"
)

func main() {
	cmd.Execute()
}
