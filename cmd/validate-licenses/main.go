package main

import (
	"os"

	"github.com/bianoble/validate-licenses/cmd/validate-licenses/cmd"
	"github.com/bianoble/validate-licenses/cmd/validate-licenses/internal/clierr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(clierr.ExitCodeOf(err))
	}
}
