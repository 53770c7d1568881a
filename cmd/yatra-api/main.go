// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"yatra/internal/ai"
	"yatra/internal/config"
	httptransport "yatra/internal/http"
	"yatra/internal/http/middleware"
	"yatra/internal/infra"
	"yatra/internal/modules/itinerary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider itinerary.Provider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.WithError(err).Fatal("gemini init")
		}
		defer gemini.Close()
		provider = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, serving fallback itineraries only")
	}

	var cache itinerary.Cache
	if cfg.Redis.Addr != "" {
		cache = itinerary.NewStore(infra.NewRedis(cfg.Redis.Addr))
	}

	svc := itinerary.NewService(provider, cache, log)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	handler := httptransport.NewRouter(svc, log, limiter, cfg.CORS.AllowOrigins)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("yatra api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
