package main

import "github.com/oshokin/typewise-alert/cmd/typewise-alert/cmd"

func main() {
	cmd.Execute()
}
