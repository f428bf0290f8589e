package main

import (
	"log"
	"net/http"
	"strings"

	"mikes-grill/api-gateway/internal/gateway"
	"mikes-grill/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	gw := gateway.NewGateway(gateway.Config{
		GrillSvcURL: cfg.GrillSvcURL,
		FrontendDir: cfg.FrontendDir,
	}, &http.Client{})

	handler := newHandler(gw, cfg.PublicBaseURL)

	log.Printf("API Gateway starting on %s", cfg.GatewayAddr)
	log.Fatal(http.ListenAndServe(cfg.GatewayAddr, handler))
}

func newHandler(gw *gateway.Gateway, publicBaseURL string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080", strings.TrimRight(publicBaseURL, "/")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Cache-Control", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}
