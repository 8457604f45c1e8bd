package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iwvelando/solar-quote/internal/config"
	"github.com/iwvelando/solar-quote/internal/proposal"
	"github.com/iwvelando/solar-quote/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type proposalResponse struct {
	Proposal   *proposal.Proposal     `json:"proposal"`
	CSV        string                 `json:"csv"`
	Text       string                 `json:"text"`
	Duration   string                 `json:"duration"`
	Config     map[string]interface{} `json:"config,omitempty"`
	ConfigYAML string                 `json:"configYaml,omitempty"`
}

func (h *handler) handleProposalUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProposalUpload"
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err), op)
		return
	}

	h.runProposal(w, r, configBytes, configMap, start, op)
}

func (h *handler) handleProposal(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProposal"
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, "invalid config payload: expected object", op)
			return
		}
		configPayload = cfgMap
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.runProposal(w, r, configBytes, configPayload, start, op)
}

func (h *handler) runProposal(w http.ResponseWriter, r *http.Request, configBytes []byte, configMap map[string]interface{}, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	p, err := proposal.Generate(r.Context(), h.logger, cfg, h.advisor)
	if err != nil {
		status := http.StatusInternalServerError
		if proposal.IsInputError(err) {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	var text bytes.Buffer
	if err := output.WritePretty(&text, p); err != nil {
		h.logger.Warn("failed to render text proposal",
			zap.String("op", op),
			zap.Error(err),
		)
	}

	elapsed := time.Since(start)
	response := proposalResponse{
		Proposal:   p,
		CSV:        output.CsvString(p),
		Text:       text.String(),
		Duration:   elapsed.String(),
		Config:     configMap,
		ConfigYAML: string(configBytes),
	}

	h.logger.Info("proposal computed",
		zap.String("op", op),
		zap.String("id", p.ID),
		zap.Int("panels", p.Sizing.NumberOfPanels),
		zap.Int64("total", p.Quote.Total),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}
