package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/port"
)

// LoadPropertyUseCase fetches a persisted property and hydrates an editable
// draft from it for edit mode.
type LoadPropertyUseCase struct {
	properties port.PropertyGatewayPort
	log        *zap.SugaredLogger
}

// NewLoadPropertyUseCase creates a new instance of the use case.
func NewLoadPropertyUseCase(properties port.PropertyGatewayPort, log *zap.SugaredLogger) *LoadPropertyUseCase {
	return &LoadPropertyUseCase{properties: properties, log: log}
}

// Execute returns a draft hydrated from the property with the given id.
// Collections the backend left empty come back with one blank entry.
func (uc *LoadPropertyUseCase) Execute(ctx context.Context, id string) (*domain.PropertyDraft, error) {
	property, err := uc.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load property %s for edit: %w", id, err)
	}
	uc.log.Infow("LoadPropertyUseCase: property loaded", "id", id, "title", property.Title)
	return domain.DraftFromProperty(property), nil
}
