package main

import "naval-tables/cmd"

func main() {
	cmd.Execute()
}
