package main

import "github.com/aquabench/aquabench-cli/cmd"

func main() {
	cmd.Execute()
}
