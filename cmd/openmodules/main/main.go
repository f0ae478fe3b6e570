package main

import (
	"fmt"
	"os"

	"github.com/Alb-O/openmodules/cmd/openmodules"
	"github.com/Alb-O/openmodules/pkg/style"
)

func main() {
	rootCmd := openmodules.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render(style.ErrorStyle, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
