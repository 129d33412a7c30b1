package conversation

import (
	"context"
	"log/slog"
	"time"

	"mariachat/app/service/facts"
	"mariachat/app/service/generate"
	"mariachat/app/service/governor"
	"mariachat/app/service/policy"
	"mariachat/app/service/signals"

	"github.com/samber/do"
)

// Service runs the dialogue policy for one turn. It holds no per-session
// state: facts and signals are recomputed from the replayed transcript on
// every call, so concurrent requests are fully independent.
type Service struct {
	generateSvc *generate.Service
	selector    *policy.Selector
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		generateSvc: do.MustInvoke[*generate.Service](di),
		selector:    policy.NewSelector(policy.NewQuestionBank(time.Now().UnixNano())),
	}, nil
}

// newWithSelector wires an explicit selector, used by tests to pin the
// question bank seed.
func newWithSelector(generateSvc *generate.Service, selector *policy.Selector) *Service {
	return &Service{
		generateSvc: generateSvc,
		selector:    selector,
	}
}

// HandleTurn always produces a valid answer; no failure propagates.
func (s *Service) HandleTurn(ctx context.Context, req ChatRequest) ChatResponse {
	fs := facts.Extract(req.Messages)
	sig := signals.Analyze(req.Messages)
	goal, guidance := s.selector.Select(fs, sig)

	meta := &Meta{
		FactSet:      fs,
		Goal:         goal,
		Availability: sig.Availability,
		RefusalCount: sig.RefusalCount,
	}

	if !s.generateSvc.Enabled() {
		// degraded mode: fixed complete fallback, no governing needed
		return ChatResponse{
			Answer: generate.MissingCredentialFallback,
			Meta:   meta,
		}
	}

	reply, err := s.generateSvc.Draft(ctx, req.Messages, guidance, req.URL)
	if err != nil {
		slog.Error("Draft failed, degrading to fallback",
			"goal", goal,
			"error", err,
		)

		reply = generate.Reply{Message: generate.CallFailureFallback}
	}

	meta.Language = reply.Language
	meta.EnglishLog = reply.EnglishLog
	meta.Scratchpad = reply.Scratchpad

	answer := governor.Repair(goal, sig, reply.Message)

	slog.Info("Handled turn",
		"goal", goal,
		"turns", sig.TurnCount,
		"refusals", sig.RefusalCount,
	)

	return ChatResponse{
		Answer: answer,
		Meta:   meta,
	}
}
