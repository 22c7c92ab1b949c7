package main

import "github.com/geoknoesis/rdfpath/cmd/rdfwalk/cmd"

func main() {
	cmd.Execute()
}
