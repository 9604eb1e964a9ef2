package main

import "github.com/arl/go-nest/cmd/nest/cmd"

func main() {
	cmd.Execute()
}
