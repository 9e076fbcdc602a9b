package main

import "github.com/oshokin/clockeroo/cmd/clockeroo/cmd"

func main() {
	cmd.Execute()
}
