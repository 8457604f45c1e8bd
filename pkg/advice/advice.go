// Package advice obtains free-text guidance for a sized system. Advice is
// decorative: a failure never invalidates the sizing or the quote.
package advice

import (
	"context"
	"errors"
	"time"

	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/sizing"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by advisors that cannot produce guidance.
var ErrUnavailable = errors.New("advice unavailable")

// Request carries the snapshot the advice is written for.
type Request struct {
	Inputs sizing.SystemInputs `json:"inputs"`
	Sizing sizing.Result       `json:"sizing"`
}

// Advisor produces guidance text for a sized system.
type Advisor interface {
	Advise(ctx context.Context, req Request) (string, error)
}

// AdvisorFunc adapts a function to the Advisor interface.
type AdvisorFunc func(ctx context.Context, req Request) (string, error)

// Advise calls f.
func (f AdvisorFunc) Advise(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Result is what a proposal shows in its advice section.
type Result struct {
	Text      string `json:"text"`
	Available bool   `json:"available"`
}

// Fetch asks advisor for guidance, bounded by timeout or, when timeout is not
// positive, the default advice timeout. Any failure, including
// a nil advisor, an empty answer or an expired deadline, degrades to the
// "advice unavailable" placeholder.
func Fetch(ctx context.Context, logger *zap.Logger, advisor Advisor, req Request, timeout time.Duration) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	unavailable := Result{Text: constants.AdviceUnavailable}
	if advisor == nil {
		return unavailable
	}

	if timeout <= 0 {
		timeout = time.Duration(constants.DefaultAdviceTimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type answer struct {
		text string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		text, err := advisor.Advise(ctx, req)
		done <- answer{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Warn("advice request abandoned",
			zap.String("op", "advice.Fetch"),
			zap.Error(ctx.Err()),
		)
		return unavailable
	case a := <-done:
		if a.err == nil && a.text == "" {
			a.err = ErrUnavailable
		}
		if a.err != nil {
			logger.Warn("advice request failed",
				zap.String("op", "advice.Fetch"),
				zap.Error(a.err),
			)
			return unavailable
		}
		return Result{Text: a.text, Available: true}
	}
}
