package main

import "github.com/iksnae/claude2gemini/cmd"

func main() {
	cmd.Execute()
}
