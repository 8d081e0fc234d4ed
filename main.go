package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/watzon/penscape/cli"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
