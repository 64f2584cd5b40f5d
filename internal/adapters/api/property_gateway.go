package api

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/constants"
	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/payload"
	"github.com/MHarnil/dwarkesh-admin/pkg/restclient"
)

// PropertyGateway implements port.PropertyGatewayPort.
type PropertyGateway struct {
	client *restclient.Client
	log    *zap.SugaredLogger
}

// NewPropertyGateway creates the gateway for the property resource.
func NewPropertyGateway(client *restclient.Client, log *zap.SugaredLogger) *PropertyGateway {
	return &PropertyGateway{client: client, log: log}
}

// List fetches all properties. Unlike the catalog endpoints this one returns
// a bare JSON array.
func (g *PropertyGateway) List(ctx context.Context) ([]domain.Property, error) {
	var properties []domain.Property
	if err := g.client.GetJSON(ctx, constants.PathProperties, &properties); err != nil {
		return nil, fmt.Errorf("property gateway: list: %w", err)
	}
	return properties, nil
}

// GetByID fetches one property with its propertyType populated.
func (g *PropertyGateway) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var property domain.Property
	if err := g.client.GetJSON(ctx, constants.PathProperties+"/"+id, &property); err != nil {
		return nil, fmt.Errorf("property gateway: get %s: %w", id, err)
	}
	return &property, nil
}

// Create submits a new property as a multipart form.
func (g *PropertyGateway) Create(ctx context.Context, sub *payload.Submission) error {
	err := g.client.SendMultipart(ctx, http.MethodPost, constants.PathProperties, sub.ContentType, sub.Body)
	if err != nil {
		return fmt.Errorf("property gateway: create: %w", err)
	}
	g.log.Infow("property created", "bytes", len(sub.Body))
	return nil
}

// Update replaces an existing property, keyed by its persisted id.
func (g *PropertyGateway) Update(ctx context.Context, id string, sub *payload.Submission) error {
	err := g.client.SendMultipart(ctx, http.MethodPut, constants.PathProperties+"/"+id, sub.ContentType, sub.Body)
	if err != nil {
		return fmt.Errorf("property gateway: update %s: %w", id, err)
	}
	g.log.Infow("property updated", "id", id, "bytes", len(sub.Body))
	return nil
}

// Delete removes a property.
func (g *PropertyGateway) Delete(ctx context.Context, id string) error {
	if err := g.client.Delete(ctx, constants.PathProperties+"/"+id); err != nil {
		return fmt.Errorf("property gateway: delete %s: %w", id, err)
	}
	g.log.Infow("property deleted", "id", id)
	return nil
}
