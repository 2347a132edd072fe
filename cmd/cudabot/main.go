package main

import "github.com/klearrshipping/cudabot/internal/cmd"

func main() {
	cmd.Execute()
}
