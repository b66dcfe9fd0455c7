package main

import (
	"os"

	"github.com/LambdaTest/ghnotify/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
