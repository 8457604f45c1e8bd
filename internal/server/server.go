package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/solar-quote/pkg/advice"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	advisor       advice.Advisor
}

// NewHandler constructs the HTTP handler that serves the proposal API. A nil
// advisor falls back to the offline summary advisor.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string, advisor advice.Advisor) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if advisor == nil {
		advisor = advice.Summary{}
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion, advisor: advisor}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Proposal from a JSON document, optionally wrapped as {"config": {...}}
		r.Post("/proposal", h.handleProposal)
		// Proposal from an uploaded YAML file
		r.Post("/proposal/upload", h.handleProposalUpload)
		// Live recomputation while a form is edited
		r.Post("/inputs/update", h.handleInputsUpdate)
		r.Get("/catalog/inverters", h.handleInverterCatalog)
		r.Get("/appliances/presets", h.handleAppliancePresets)
		// Config serialization endpoint for editor downloads
		r.Post("/editor/export", h.handleConfigExport)
		r.Get("/version", h.handleVersion)
	})

	return r
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes before writing the status so an unencodable payload
// becomes a 500 instead of a 200 with an empty body.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
