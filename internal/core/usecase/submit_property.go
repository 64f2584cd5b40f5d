package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/core/draftform"
	"github.com/MHarnil/dwarkesh-admin/internal/core/payload"
	"github.com/MHarnil/dwarkesh-admin/internal/core/port"
	"github.com/MHarnil/dwarkesh-admin/internal/core/validate"
)

// ValidationFailedError blocks a submission whose draft still has invalid
// fields. It never propagates past the form layer: the view renders the
// per-field map inline.
type ValidationFailedError struct {
	Errors validate.Errors
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("draft has %d invalid field(s)", len(e.Errors))
}

// SubmitPropertyUseCase runs the submission pipeline: full validation,
// multipart serialization, then a create or update through the property
// gateway depending on whether the draft carries a persisted id.
type SubmitPropertyUseCase struct {
	properties port.PropertyGatewayPort
	blobs      payload.BlobSource
	log        *zap.SugaredLogger
}

// NewSubmitPropertyUseCase creates a new instance of the use case.
func NewSubmitPropertyUseCase(
	properties port.PropertyGatewayPort,
	blobs payload.BlobSource,
	log *zap.SugaredLogger,
) *SubmitPropertyUseCase {
	return &SubmitPropertyUseCase{
		properties: properties,
		blobs:      blobs,
		log:        log,
	}
}

// Execute validates and submits the form's draft. On a validation failure
// nothing is serialized or sent; on a blob read failure the whole submission
// is aborted with the payload error. Nothing is retried.
func (uc *SubmitPropertyUseCase) Execute(ctx context.Context, form *draftform.Form) error {
	draft := form.Draft()

	// Full pass, independent of what the per-change validation already showed.
	if errs := validate.Validate(draft, form.Catalog()); !errs.Valid() {
		uc.log.Infow("SubmitPropertyUseCase: submission blocked by validation", "fields", len(errs))
		return &ValidationFailedError{Errors: errs}
	}

	sub, err := payload.Build(draft, uc.blobs)
	if err != nil {
		return fmt.Errorf("serialize property draft: %w", err)
	}

	if draft.ID == "" {
		if err := uc.properties.Create(ctx, sub); err != nil {
			return err
		}
		uc.log.Infow("SubmitPropertyUseCase: property created", "title", draft.Title)
		return nil
	}

	if err := uc.properties.Update(ctx, draft.ID, sub); err != nil {
		return err
	}
	uc.log.Infow("SubmitPropertyUseCase: property updated", "id", draft.ID, "title", draft.Title)
	return nil
}
