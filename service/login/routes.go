package login

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Leugard/daytogether-auth/metrics"
	"github.com/Leugard/daytogether-auth/types"
	"github.com/Leugard/daytogether-auth/utils"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	metrics *metrics.Metrics
}

// NewHandler wires the login route. m may be nil.
func NewHandler(service *Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/google-login", h.handleGoogleLogin).Methods(http.MethodPost)
}

func (h *Handler) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := zerolog.Ctx(r.Context())

	var payload types.TokenRequest
	if err := utils.ParseJSON(r, &payload); err != nil {
		h.fail(w, r, start, types.InvalidCredential(err))
		return
	}

	if err := utils.Validate.Struct(payload); err != nil {
		h.fail(w, r, start, types.InvalidCredential(errors.New("id_token is required")))
		return
	}

	resp, err := h.service.Exchange(r.Context(), payload)
	if err != nil {
		h.fail(w, r, start, err)
		return
	}

	h.observe(metrics.OutcomeSuccess, start)
	logger.Info().Msg("custom token issued")

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	logger := zerolog.Ctx(r.Context())

	if types.KindOf(err) == types.KindInvalidCredential {
		h.observe(metrics.OutcomeInvalidCredential, start)
		logger.Warn().Err(err).Msg("rejected google id token")
		utils.WriteError(w, http.StatusBadRequest, fmt.Errorf("Invalid Google ID token: %w", err))
		return
	}

	h.observe(metrics.OutcomeUpstreamFailure, start)
	logger.Error().Err(err).Msg("google login failed")
	utils.WriteError(w, http.StatusInternalServerError, fmt.Errorf("Server error: %w", err))
}

func (h *Handler) observe(outcome string, start time.Time) {
	if h.metrics == nil {
		return
	}
	h.metrics.ObserveLogin(outcome, time.Since(start).Seconds())
}
