package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"flashlight-portfolio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
