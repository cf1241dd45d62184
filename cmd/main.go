package main

import (
	"os"

	"github.com/IvanPareja1/profitness-app-sub003/config"
	"github.com/IvanPareja1/profitness-app-sub003/middlewares"
	"github.com/IvanPareja1/profitness-app-sub003/routes"
)

func main() {
	db := config.InitDB()
	middlewares.InitPrometheus()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	r.Run(":" + port)
}
