package main

import "github.com/Henrik-Peters/Yalc/cmd"

func main() {
	cmd.Execute()
}
