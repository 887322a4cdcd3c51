package main

import (
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/harrison/mdbook-blog/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrUnsupportedRenderer) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
