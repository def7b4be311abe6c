package insights

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Probes interface {
	ListenAndServe()
	Shutdown(ctx context.Context) error
	Handler() http.Handler
}

type probesImpl struct {
	server      *http.Server
	isConnected func() bool
}

// NewProbes exposes /liveness and /readiness; readiness follows isConnected.
func NewProbes(port int, isConnected func() bool) Probes {
	probes := &probesImpl{isConnected: isConnected}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/liveness", probes.liveness)
	router.Get("/readiness", probes.readiness)

	probes.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return probes
}

func (probes *probesImpl) Handler() http.Handler {
	return probes.server.Handler
}

func (probes *probesImpl) ListenAndServe() {
	go func() {
		log.Info().Str("addr", probes.server.Addr).Msg("Probes listening")
		if err := probes.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Probes stopped listening")
		}
	}()
}

func (probes *probesImpl) Shutdown(ctx context.Context) error {
	return probes.server.Shutdown(ctx)
}

func (probes *probesImpl) liveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (probes *probesImpl) readiness(w http.ResponseWriter, _ *http.Request) {
	if !probes.isConnected() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("KO"))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
