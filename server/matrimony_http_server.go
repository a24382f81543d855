package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"mm-server/config"
)

type MatrimonyHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewMatrimonyHttpServer(router *Router, muxRouter *mux.Router) *MatrimonyHttpServer {
	return &MatrimonyHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes and serves until an interrupt or termination
// signal arrives, then shuts down gracefully.
func (s *MatrimonyHttpServer) Start() {
	s.router.RegisterRoutes()

	// The app runs from a webview origin during development; allow it through
	// along with the session token header.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", config.SESSION_TOKEN_HEADER},
	})

	srv := &http.Server{
		Addr:    config.SERVER_ADDRESS,
		Handler: corsHandler.Handler(s.muxRouter),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", config.SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("ListenAndServe failed", "err", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}
