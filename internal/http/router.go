// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"yatra/internal/http/handlers"
	"yatra/internal/http/middleware"
	"yatra/internal/modules/itinerary"
)

func NewRouter(svc *itinerary.Service, log *logrus.Logger, limiter *middleware.RateLimiter, allowOrigins []string) http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(log), middleware.Recovery(log))
	r.Use(cors.New(corsConfig(allowOrigins)))

	h := handlers.NewItineraryHandler(svc)
	api := r.Group("/api")
	api.POST("/itinerary", limiter.Middleware(), h.Generate)
	api.POST("/itinerary/parse", h.Parse)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowOrigins
	return cfg
}
