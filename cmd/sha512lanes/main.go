package main

import "github.com/zeebo/sha512block/cmd/sha512lanes/cmd"

func main() {
	cmd.Execute()
}
