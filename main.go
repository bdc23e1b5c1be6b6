package main

import "github.com/realm-go/realm/cmd"

func main() {
	cmd.Execute()
}
