package port

import (
	"context"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/payload"
)

// PropertyTypeGatewayPort defines the CRUD contract for the property type
// catalog resource.
type PropertyTypeGatewayPort interface {
	List(ctx context.Context) ([]domain.PropertyType, error)
	Create(ctx context.Context, name string) error
	Update(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
}

// PropertyGatewayPort defines the contract for the property resource.
// Create and Update take the serialized multipart submission because images
// travel in the same request as the scalar fields.
type PropertyGatewayPort interface {
	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, sub *payload.Submission) error
	Update(ctx context.Context, id string, sub *payload.Submission) error
	Delete(ctx context.Context, id string) error
}

// ContactGatewayPort defines the contract for contact-form submissions.
// There is no create or update path on the admin side.
type ContactGatewayPort interface {
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}
