package main

import "go.mydb/internal/cli"

func main() {
	cli.Execute()
}
