package main

import "songsearch/internal/cli"

func main() {
	cli.Execute()
}
