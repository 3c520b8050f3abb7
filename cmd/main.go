package main

import (
	_ "aero-lite/docs"
	"aero-lite/internal/app"
	"log"
)

// @title           AERO Lite API
// @version         1.0
// @description     Симуляция маршрутов трансграничных переводов и анализ комиссий по чекам для Loadit

// @contact.name   Loadit
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	app, err := app.NewApp()
	if err != nil {
		log.Fatalf("Ошибка создания приложения: %v", err)
	}

	if err := app.BuildRoutingLayer(); err != nil {
		log.Fatalf("Ошибка сборки слоя routing: %v", err)
	}
	app.BuildReceiptLayer()

	if err := app.Run(); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
}
