package main

import "github.com/aalvaropc/chromix/internal/cli"

func main() {
	cli.Execute()
}
