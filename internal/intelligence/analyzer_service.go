package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/llm"
)

// ErrEmptyDescription is returned when there is nothing to analyze.
var ErrEmptyDescription = fmt.Errorf("%w: idea description is empty", domain.ErrValidation)

// AnalyzerService reads a free-text product idea into an AIAnalysis.
type AnalyzerService interface {
	// Analyze never fails because of the model: any LLM error, malformed
	// reply or low-confidence reply falls back to DeterministicAnalysis.
	Analyze(ctx context.Context, description string) (*domain.AIAnalysis, error)
}

type analyzerService struct {
	client        llm.LLMClient
	minConfidence float64
}

func NewAnalyzerService(client llm.LLMClient, minConfidence float64) AnalyzerService {
	return &analyzerService{client: client, minConfidence: minConfidence}
}

func (s *analyzerService) Analyze(ctx context.Context, description string) (*domain.AIAnalysis, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnalyzeIdea,
		SystemPrompt: analyzeIdeaSystemPrompt,
		UserPrompt:   "Product idea:\n\n" + description,
	})
	if err != nil {
		return DeterministicAnalysis(description), nil
	}

	analysis, err := llm.ExtractJSON(resp.Text, validateAnalysis)
	if err != nil || analysis.Confidence < s.minConfidence {
		return DeterministicAnalysis(description), nil
	}

	analysis.Source = domain.AnalysisLLM
	analysis.Platforms = dedupePlatforms(analysis.Platforms)
	return &analysis, nil
}

func validateAnalysis(a domain.AIAnalysis) error {
	var errs []error
	if !a.ProjectType.Valid() {
		errs = append(errs, fmt.Errorf("unknown project_type %q", a.ProjectType))
	}
	for _, p := range a.Platforms {
		if p != domain.PlatformWeb && p != domain.PlatformIOS && p != domain.PlatformAndroid {
			errs = append(errs, fmt.Errorf("unknown platform %q", p))
		}
	}
	if a.ComplexityLevel != domain.ComplexityNone && !a.ComplexityLevel.Valid() {
		errs = append(errs, fmt.Errorf("unknown complexity_level %q", a.ComplexityLevel))
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		errs = append(errs, fmt.Errorf("confidence %.2f out of range", a.Confidence))
	}
	return errors.Join(errs...)
}

func dedupePlatforms(ps []domain.Platform) []domain.Platform {
	out := make([]domain.Platform, 0, len(ps))
	seen := map[domain.Platform]bool{}
	for _, p := range ps {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
