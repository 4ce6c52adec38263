package main

import "github.com/steved/routetable/cmd"

func main() {
	cmd.Execute()
}
