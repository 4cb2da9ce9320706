package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Leugard/daytogether-auth/metrics"
	"github.com/Leugard/daytogether-auth/middleware"
	"github.com/Leugard/daytogether-auth/service/login"
	"github.com/Leugard/daytogether-auth/types"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Addr               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type APIServer struct {
	opts     Options
	verifier types.IdentityVerifier
	issuer   types.TokenIssuer
	metrics  *metrics.Metrics
}

func NewAPIServer(opts Options, verifier types.IdentityVerifier, issuer types.TokenIssuer, m *metrics.Metrics) *APIServer {
	if m == nil {
		m = metrics.New()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return &APIServer{
		opts:     opts,
		verifier: verifier,
		issuer:   issuer,
		metrics:  m,
	}
}

// Handler builds the full middleware chain and routes.
func (s *APIServer) Handler() http.Handler {
	router := mux.NewRouter()

	loginHandler := login.NewHandler(login.NewService(s.verifier, s.issuer), s.metrics)
	loginHandler.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	var h http.Handler = router
	h = middleware.Recover(h)
	h = middleware.Logger(h)
	h = middleware.RequestID(h)
	h = middleware.CORS(s.opts.CORSAllowedOrigins)(h)
	return h
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *APIServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.opts.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
