package main

import "vibegraph/cmd/vibegraph-cli/cmd"

func main() {
	cmd.Execute()
}
