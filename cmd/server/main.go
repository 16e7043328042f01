package main

import (
	"os"

	"slots_backend/internal/app"

	"github.com/charmbracelet/log"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
