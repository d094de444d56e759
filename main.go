package main

import "github.com/khanhnv2901/gqlaudit/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
