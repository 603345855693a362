package service

import (
	"context"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
)

// SummaryCache stores computed rating summaries. Implementations must treat
// backend failures as misses so the datastore stays the source of truth.
type SummaryCache interface {
	Get(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, bool)
	// Fill stores a summary computed on a read. It never replaces an
	// existing entry, so a slow reader cannot overwrite a summary written
	// by Set after a newer rating.
	Fill(ctx context.Context, summary *entity.RatingSummary)
	// Set replaces the entry with a summary computed after a write. When the
	// write fails the entry is dropped instead.
	Set(ctx context.Context, summary *entity.RatingSummary)
}
