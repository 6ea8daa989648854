package main

import (
	"log"

	"clockalert/internal/app"
	"clockalert/internal/config"
)

func main() {
	cfg := config.MustLoad()

	if err := app.Run(cfg); err != nil {
		log.Fatalf("clockalert: %v", err)
	}
}
