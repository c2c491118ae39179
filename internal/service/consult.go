package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ymatsuda/expertdesk/internal/domain"
	"github.com/ymatsuda/expertdesk/internal/llm"
	"github.com/ymatsuda/expertdesk/internal/metrics"
)

// KeyResolver reports whether an API key is available. Resolution happens
// per request so key rotation needs no restart.
type KeyResolver interface {
	Resolve() (string, bool)
}

type ConsultService interface {
	Ask(ctx context.Context, req *domain.ConsultRequest) (*domain.ConsultResponse, error)
}

type ConsultServiceDeps struct {
	Credentials KeyResolver
	LLM         llm.Client
	Logger      *zap.Logger
	Metrics     *metrics.Metrics

	// Provider names the LLM backend in metrics ("openai", "mock").
	Provider string
}

type consultService struct {
	credentials KeyResolver
	llm         llm.Client
	logger      *zap.Logger
	metrics     *metrics.Metrics
	provider    string
}

func NewConsultService(deps ConsultServiceDeps) ConsultService {
	if deps.Provider == "" {
		deps.Provider = "openai"
	}

	return &consultService{
		credentials: deps.Credentials,
		llm:         deps.LLM,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		provider:    deps.Provider,
	}
}

// Ask runs one consultation: role check, credential presence check, then
// exactly one completion call. Order matters — a bad role must fail before
// the resolver is touched, and a missing key before any network I/O.
func (s *consultService) Ask(ctx context.Context, req *domain.ConsultRequest) (*domain.ConsultResponse, error) {
	startTime := time.Now()

	if s.metrics != nil {
		s.metrics.IncRequestsInFlight()
		defer s.metrics.DecRequestsInFlight()
	}

	if err := req.Validate(); err != nil {
		if s.metrics != nil {
			s.metrics.RecordConsult(roleLabel(req.Role), "validation_error", time.Since(startTime))
		}
		return nil, err
	}
	req.Sanitize()

	if _, ok := s.credentials.Resolve(); !ok {
		if s.metrics != nil {
			s.metrics.RecordConsult(req.Role.String(), "config_error", time.Since(startTime))
		}
		return nil, domain.ErrMissingAPIKey
	}

	s.logger.Info("processing consultation",
		zap.String("role", req.Role.String()),
		zap.Int("input_length", len(req.Text)),
	)

	llmStart := time.Now()
	answer, err := s.llm.CompleteWithSystem(ctx, req.Role.Instruction(), req.Text)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordLLMRequest(s.provider, "error", time.Since(llmStart))
			s.metrics.RecordConsult(req.Role.String(), "llm_error", time.Since(startTime))
		}
		s.logger.Error("completion failed",
			zap.String("role", req.Role.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordLLMRequest(s.provider, "success", time.Since(llmStart))
		s.metrics.RecordConsult(req.Role.String(), "success", time.Since(startTime))
	}

	s.logger.Info("consultation processed",
		zap.String("role", req.Role.String()),
		zap.Duration("llm_duration", time.Since(llmStart)),
	)

	return &domain.ConsultResponse{
		Text: strings.TrimSpace(answer),
	}, nil
}

// roleLabel keeps the metrics label set closed: the role string comes from
// the form, so anything outside the known roles collapses to one value.
func roleLabel(r domain.ExpertRole) string {
	if r.IsValid() {
		return r.String()
	}
	return "invalid"
}
