package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sadopc/ambrogio/cmd"
)

func main() {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
