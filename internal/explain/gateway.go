package explain

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

// FallbackMessage is returned in place of generated text whenever the
// provider fails.
const FallbackMessage = "Sorry, the explanation service is unavailable right now. Please try again in a little while."

const DefaultTimeout = 30 * time.Second

// ProjectFinder looks projects up by id or slug.
type ProjectFinder interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
}

type Result struct {
	ProjectID string  `json:"projectId"`
	Persona   Persona `json:"persona"`
	Text      string  `json:"text"`
	Fallback  bool    `json:"fallback"`
}

type Gateway struct {
	projects ProjectFinder
	provider Provider
	timeout  time.Duration
}

func NewGateway(projects ProjectFinder, provider Provider, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{projects: projects, provider: provider, timeout: timeout}
}

// Explain generates a persona-specific summary of the project addressed by
// idOrSlug. Provider failures are logged and answered with FallbackMessage;
// only validation and lookup errors are returned.
func (g *Gateway) Explain(ctx context.Context, idOrSlug, rawPersona string) (*Result, error) {
	persona, err := ParsePersona(rawPersona)
	if err != nil {
		return nil, err
	}

	project, err := g.lookup(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.provider.Generate(callCtx, BuildPrompt(project, persona))
	if err != nil {
		logging.NewLogger(ctx).LogError("explain.generate", err,
			zap.String("project_id", project.ID),
			zap.String("persona", string(persona)),
			zap.Duration("elapsed", time.Since(start)))
		return &Result{ProjectID: project.ID, Persona: persona, Text: FallbackMessage, Fallback: true}, nil
	}

	return &Result{ProjectID: project.ID, Persona: persona, Text: text}, nil
}

func (g *Gateway) lookup(ctx context.Context, idOrSlug string) (*domain.Project, error) {
	if idOrSlug == "" {
		return nil, domain.NotFound(domain.KindProject)
	}
	p, err := g.projects.Get(ctx, idOrSlug)
	if errors.Is(err, domain.ErrNotFound) {
		return g.projects.GetBySlug(ctx, idOrSlug)
	}
	return p, err
}
