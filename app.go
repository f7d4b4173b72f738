package main

import "github.com/rmarchant/gitcorpus/cmd"

func main() {
	cmd.Run()
}
