package main

import "concursos/internal/cli"

func main() {
	cli.Execute()
}
