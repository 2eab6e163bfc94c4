package handler

import (
	"context"

	"github.com/itchan-dev/threadline/backend/internal/service"
	"github.com/itchan-dev/threadline/shared/domain"
)

// PageRenderer produces HTML views.
type PageRenderer interface {
	Thread(t *domain.Thread) (string, error)
	Conversation(c *domain.Conversation) (string, error)
}

// Archive serves previously persisted runs. Optional.
type Archive interface {
	GetRunSummary(ctx context.Context, runId string) (domain.Summary, error)
	ListThreadRoots(ctx context.Context, runId string) ([]domain.PostId, error)
}

type Handler struct {
	results  service.ResultService
	renderer PageRenderer
	archive  Archive
}

// New builds a handler. archive may be nil when persistence is disabled.
func New(results service.ResultService, renderer PageRenderer, archive Archive) *Handler {
	return &Handler{results: results, renderer: renderer, archive: archive}
}
