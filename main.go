package main

import "notes-importer/cmd"

func main() {
	cmd.Execute()
}
