package main

import (
	"counter/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("counter terminated: %v", err)
	}
}
