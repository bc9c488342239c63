package main

import "github.com/mateusmacedo/go-fleetseed/internal/cli"

func main() {
	cli.Execute()
}
