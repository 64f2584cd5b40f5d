package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/constants"
	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/pkg/restclient"
)

// ContactGateway implements port.ContactGatewayPort. Contact submissions are
// created by the public site; the admin only reads and deletes them.
type ContactGateway struct {
	client *restclient.Client
	log    *zap.SugaredLogger
}

// NewContactGateway creates the gateway for contact submissions.
func NewContactGateway(client *restclient.Client, log *zap.SugaredLogger) *ContactGateway {
	return &ContactGateway{client: client, log: log}
}

// List fetches all submissions from the data envelope.
func (g *ContactGateway) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	var resp struct {
		Data []domain.ContactSubmission `json:"data"`
	}
	if err := g.client.GetJSON(ctx, constants.PathContacts, &resp); err != nil {
		return nil, fmt.Errorf("contact gateway: list: %w", err)
	}
	return resp.Data, nil
}

// Delete removes a submission.
func (g *ContactGateway) Delete(ctx context.Context, id string) error {
	if err := g.client.Delete(ctx, constants.PathContacts+"/"+id); err != nil {
		return fmt.Errorf("contact gateway: delete %s: %w", id, err)
	}
	g.log.Infow("contact submission deleted", "id", id)
	return nil
}
