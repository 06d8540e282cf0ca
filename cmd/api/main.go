package main

import (
	"fmt"
	"net/http"
	"os"

	"osm-hvac-report/internal/api/handlers"
	"osm-hvac-report/internal/api/middleware"
	"osm-hvac-report/internal/data"
	"osm-hvac-report/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("API_ENV")
	if env == "" {
		env = "development"
	}
	logging.Setup(env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cache := data.GetCache()
	if cache != nil {
		log.Info().Msg("model cache enabled")
	}

	router := handlers.NewRouter(cache)

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := http.ListenAndServe(addr, middleware.CORS(router)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
