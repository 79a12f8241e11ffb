package rebalancing

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/SongChangseok/stock-dashboard/internal/modules/holdings"
	"github.com/SongChangseok/stock-dashboard/internal/modules/targets"
)

// Response bundles the calculation, its recommendations, and the
// validation pass into one payload
type Response struct {
	Result          Result     `json:"result"`
	Recommendations []string   `json:"recommendations"`
	Validation      Validation `json:"validation"`
}

// Handler handles rebalancing HTTP requests
type Handler struct {
	holdings    *holdings.Service
	targets     *targets.Service
	defaultOpts Options
	log         zerolog.Logger
}

// NewHandler creates a new rebalancing handler. defaultOpts seeds each
// request's options before the request body is applied on top.
func NewHandler(
	holdingsSvc *holdings.Service,
	targetsSvc *targets.Service,
	defaultOpts Options,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		holdings:    holdingsSvc,
		targets:     targetsSvc,
		defaultOpts: defaultOpts.withDefaults(),
		log:         log.With().Str("handler", "rebalancing").Logger(),
	}
}

// Routes returns the rebalancing route tree
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/{targetID}/calculate", h.handleCalculate)
	return r
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	// Decoding over the prefilled struct keeps defaults for omitted fields
	opts := h.defaultOpts
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "invalid options payload")
		return
	}

	portfolio, err := h.targets.Get(chi.URLParam(r, "targetID"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, http.StatusNotFound, "target portfolio not found")
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	snapshot, err := h.holdings.Snapshot()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := Calculate(snapshot, portfolio.TargetSet(), opts)

	h.log.Debug().
		Str("target_id", portfolio.ID).
		Int("calculation_count", len(result.Calculations)).
		Bool("is_balanced", result.IsBalanced).
		Float64("total_rebalance_value", result.TotalRebalanceValue).
		Msg("Rebalancing calculated")

	h.writeJSON(w, http.StatusOK, Response{
		Result:          result,
		Recommendations: Recommendations(result),
		Validation:      Validate(result),
	})
}

// Helper methods

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
