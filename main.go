package main

import (
	"log"

	"notice-precheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("notice-precheck: %v", err)
	}
}
