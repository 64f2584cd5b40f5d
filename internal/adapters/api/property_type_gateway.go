// Package api implements the gateway ports over the Dwarkesh REST backend.
// Each gateway is a stateless function set for one resource; network and
// server failures come back as errors for the caller to surface, nothing is
// retried here.
package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/constants"
	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/pkg/restclient"
)

// PropertyTypeGateway implements port.PropertyTypeGatewayPort.
type PropertyTypeGateway struct {
	client *restclient.Client
	log    *zap.SugaredLogger
}

// NewPropertyTypeGateway creates the gateway for the property type catalog.
func NewPropertyTypeGateway(client *restclient.Client, log *zap.SugaredLogger) *PropertyTypeGateway {
	return &PropertyTypeGateway{client: client, log: log}
}

// List fetches the full catalog. The endpoint wraps its payload in a data
// envelope.
func (g *PropertyTypeGateway) List(ctx context.Context) ([]domain.PropertyType, error) {
	var resp struct {
		Data []domain.PropertyType `json:"data"`
	}
	if err := g.client.GetJSON(ctx, constants.PathPropertyTypes, &resp); err != nil {
		return nil, fmt.Errorf("property type gateway: list: %w", err)
	}
	return resp.Data, nil
}

// Create adds a catalog entry.
func (g *PropertyTypeGateway) Create(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	if err := g.client.PostJSON(ctx, constants.PathPropertyTypes, body, nil); err != nil {
		return fmt.Errorf("property type gateway: create: %w", err)
	}
	g.log.Infow("property type created", "name", name)
	return nil
}

// Update renames a catalog entry.
func (g *PropertyTypeGateway) Update(ctx context.Context, id string, name string) error {
	body := map[string]string{"name": name}
	if err := g.client.PutJSON(ctx, constants.PathPropertyTypes+"/"+id, body, nil); err != nil {
		return fmt.Errorf("property type gateway: update %s: %w", id, err)
	}
	g.log.Infow("property type updated", "id", id, "name", name)
	return nil
}

// Delete removes a catalog entry.
func (g *PropertyTypeGateway) Delete(ctx context.Context, id string) error {
	if err := g.client.Delete(ctx, constants.PathPropertyTypes+"/"+id); err != nil {
		return fmt.Errorf("property type gateway: delete %s: %w", id, err)
	}
	g.log.Infow("property type deleted", "id", id)
	return nil
}
