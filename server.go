package caltrainlive

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	server  *http.Server
	service *Service
)

func apiMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/stops", handleStops)
	mux.HandleFunc("GET /api/stops/{stop_id}/trains", handleStopTrains)
	mux.HandleFunc("GET /api/stops_in_direction", handleStopsInDirection)
	mux.HandleFunc("GET /api/next_trains", handleNextTrains)
	return mux
}

// StartServer wires the API routes and starts listening in the background.
func StartServer(svc *Service) {
	service = svc

	mux := apiMux()
	addr := fmt.Sprintf(":%d", Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", addr).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		} else {
			log.Info().Msg("server shut down")
		}
	}
}
