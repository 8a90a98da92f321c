package main

import (
	"os"

	"github.com/codetrail/gemini-reviewer/cmd"
	_ "github.com/codetrail/gemini-reviewer/version" // Import for version info
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
