package main

import "github.com/bnema/framepick/internal/cli"

func main() {
	cli.Execute()
}
