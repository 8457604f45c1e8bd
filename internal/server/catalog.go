package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/iwvelando/solar-quote/pkg/analysis"
	"github.com/iwvelando/solar-quote/pkg/load"
	"github.com/iwvelando/solar-quote/pkg/pricing"
	"github.com/iwvelando/solar-quote/pkg/sizing"
	"github.com/iwvelando/solar-quote/pkg/validation"
	"go.uber.org/zap"
)

type inputsUpdateRequest struct {
	Inputs *sizing.SystemInputs `json:"inputs,omitempty"`
	Update sizing.Update        `json:"update"`
}

type inputsUpdateResponse struct {
	Inputs                 sizing.SystemInputs     `json:"inputs"`
	Sizing                 sizing.Result           `json:"sizing"`
	SuggestedInverterPower int                     `json:"suggestedInverterPower"`
	Analysis               analysis.SystemAnalysis `json:"analysis"`
	Items                  []pricing.QuoteItem     `json:"items"`
	Subtotal               int64                   `json:"subtotal"`
	Warnings               []string                `json:"warnings,omitempty"`
}

// handleInputsUpdate applies a form edit to an input snapshot and returns the
// recomputed engine outputs. A missing snapshot starts from the defaults.
func (h *handler) handleInputsUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleInputsUpdate"
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var req inputsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode update: %v", err), op)
		return
	}

	prev := sizing.DefaultInputs()
	if req.Inputs != nil {
		prev = *req.Inputs
	}
	next := sizing.ApplyUpdate(prev, req.Update)
	if err := sizing.Validate(next); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result := sizing.Size(next)
	items := pricing.GenerateItems(result, next)
	h.logger.Debug("inputs recomputed",
		zap.String("op", op),
		zap.Int("panels", result.NumberOfPanels),
	)

	h.writeJSON(w, http.StatusOK, inputsUpdateResponse{
		Inputs:                 next,
		Sizing:                 result,
		SuggestedInverterPower: pricing.SuggestedInverterPower(result.InverterSizeWatts),
		Analysis:               analysis.Analyze(next.InverterTopology, result.InverterSizeWatts),
		Items:                  items,
		Subtotal:               pricing.Subtotal(items),
		Warnings:               validation.InputWarnings(next),
	})
}

// handleInverterCatalog lists catalog inverters. With ?topology= the list is
// filtered, and with ?watts= it is ranked by fit.
func (h *handler) handleInverterCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleInverterCatalog"
	query := r.URL.Query()

	options := analysis.Catalog()
	if raw := query.Get("topology"); raw != "" {
		topology := sizing.Topology(raw)
		if !slices.Contains(sizing.Topologies, topology) {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("unknown topology %q", raw), op)
			return
		}
		options = analysis.CatalogFor(topology)
	}

	if raw := query.Get("watts"); raw != "" {
		watts, err := strconv.ParseFloat(raw, 64)
		if err != nil || watts < 0 {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid watts %q", raw), op)
			return
		}
		options = analysis.Recommend(options, watts)
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"inverters": options,
	})
}

func (h *handler) handleAppliancePresets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"appliances": load.Presets(),
		"starter":    load.StarterCensus(),
	})
}
