// Package proposal assembles a complete customer proposal: sizing, topology
// analysis, priced quote and advisory text.
package proposal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/solar-quote/internal/config"
	"github.com/iwvelando/solar-quote/pkg/advice"
	"github.com/iwvelando/solar-quote/pkg/analysis"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/datetime"
	"github.com/iwvelando/solar-quote/pkg/load"
	"github.com/iwvelando/solar-quote/pkg/pricing"
	"github.com/iwvelando/solar-quote/pkg/sizing"
	"go.uber.org/zap"
)

// Proposal is the document handed to the customer.
type Proposal struct {
	ID            string                  `json:"id"`
	IssueDate     string                  `json:"issueDate"`
	ValidUntil    string                  `json:"validUntil"`
	Company       config.Party            `json:"company"`
	Customer      config.Party            `json:"customer"`
	Inputs        sizing.SystemInputs     `json:"inputs"`
	Appliances    []load.Appliance        `json:"appliances,omitempty"`
	Load          *load.Summary           `json:"load,omitempty"`
	Sizing        sizing.Result           `json:"sizing"`
	ArrayPowerKwp float64                 `json:"arrayPowerKwp"`
	Analysis      analysis.SystemAnalysis `json:"analysis"`
	Quote         pricing.Quote           `json:"quote"`
	Advice        advice.Result           `json:"advice"`
	Warnings      []string                `json:"warnings,omitempty"`
}

// IsInputError reports whether err was caused by the caller's configuration
// rather than by the service.
func IsInputError(err error) bool {
	return errors.Is(err, sizing.ErrInvalidInput) ||
		errors.Is(err, load.ErrInvalidAppliance) ||
		errors.Is(err, pricing.ErrUnknownItem) ||
		errors.Is(err, pricing.ErrInvalidOverride)
}

// Generate builds a proposal dated today.
func Generate(ctx context.Context, logger *zap.Logger, conf *config.Configuration, advisor advice.Advisor) (*Proposal, error) {
	return GenerateAt(ctx, logger, conf, advisor, time.Now())
}

// GenerateAt builds a proposal with an injectable issue time.
func GenerateAt(ctx context.Context, logger *zap.Logger, conf *config.Configuration, advisor advice.Advisor, issued time.Time) (*Proposal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		return nil, errors.New("nil configuration")
	}

	if err := load.Validate(conf.Appliances); err != nil {
		return nil, err
	}
	inputs := conf.ResolveInputs()
	if err := sizing.Validate(inputs); err != nil {
		return nil, err
	}

	result := sizing.Size(inputs)
	logger.Debug("system sized",
		zap.String("op", "proposal.Generate"),
		zap.Int("panels", result.NumberOfPanels),
		zap.Float64("inverterSizeWatts", result.InverterSizeWatts),
		zap.Float64("batteryCapacityAh", result.BatteryCapacityAh),
	)

	systemAnalysis := analysis.Analyze(inputs.InverterTopology, result.InverterSizeWatts)
	if len(systemAnalysis.InverterRecommendations) == 0 {
		logger.Warn("no catalog inverter matches topology",
			zap.String("op", "proposal.Generate"),
			zap.String("topology", string(inputs.InverterTopology)),
		)
	}
	systemAnalysis.InverterRecommendations = analysis.Top(systemAnalysis.InverterRecommendations, conf.Recommendations.Limit)

	quote, err := pricing.Build(result, inputs, conf.Quote.Overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote: %w", err)
	}

	p := &Proposal{
		ID:            uuid.NewString(),
		IssueDate:     issued.Format(constants.DateLayout),
		ValidUntil:    datetime.ValidUntil(issued, conf.Quote.ValidityDays),
		Company:       conf.Company,
		Customer:      conf.Customer,
		Inputs:        inputs,
		Sizing:        result,
		ArrayPowerKwp: result.ArrayPowerKwp(inputs.PanelWattage),
		Analysis:      systemAnalysis,
		Quote:         quote,
		Warnings:      conf.ValidateConfiguration(),
	}
	if len(conf.Appliances) > 0 {
		summary := load.Summarize(conf.Appliances)
		p.Appliances = conf.Appliances
		p.Load = &summary
	}

	if conf.Advice.Enabled {
		req := advice.Request{Inputs: inputs, Sizing: result}
		p.Advice = advice.Fetch(ctx, logger, advisor, req, conf.Advice.Timeout)
	}

	logger.Info("proposal generated",
		zap.String("op", "proposal.Generate"),
		zap.String("id", p.ID),
		zap.Int64("total", quote.Total),
		zap.Int("warnings", len(p.Warnings)),
	)
	return p, nil
}
