package main

import (
	"restaurante-api/internal/app"
	"restaurante-api/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
