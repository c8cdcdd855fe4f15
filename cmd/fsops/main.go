package main

import "github.com/fsops-project/fsops/internal/cli"

func main() {
	cli.Execute()
}
