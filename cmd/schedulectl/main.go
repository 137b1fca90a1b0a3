package main

import "github.com/Freeeeeet/tutorcenter/internal/cli"

func main() {
	cli.Execute()
}
