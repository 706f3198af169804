package main

import (
	"log"

	"github.com/relabs-tech/hall_matrix/internal/app"
	"github.com/relabs-tech/hall_matrix/internal/config"
)

func main() {
	log.Println("starting hall-matrix SSD1306 display (MQTT subscriber)")

	if err := config.InitGlobal("hall_config.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunDisplay(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
