package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rayfin-dev/rayfin/internal/commands"
)

func main() {
	// Optional .env with RAYFIN_* overrides; a missing file is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
