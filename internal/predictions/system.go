package predictions

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/internal/pipeline"
	"github.com/clinvital/vitalis/pkg/pagination"
)

// System defines the public contract for prediction domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Prediction], error)

	Find(ctx context.Context, id uuid.UUID) (*Prediction, error)

	// History returns a patient's persisted predictions, newest first.
	History(ctx context.Context, patientID uuid.UUID) ([]Prediction, error)

	// Predict runs the pipeline against a stored patient, persists the
	// outcome, and records the predicted diseases on the patient.
	Predict(ctx context.Context, patientID uuid.UUID) (*Prediction, *Assessment, error)

	// Preview runs the pipeline against ad hoc input without persisting
	// anything.
	Preview(ctx context.Context, cmd PreviewCommand) (*Assessment, error)

	// Train retrains the model from the stored patient population.
	Train(ctx context.Context) (*pipeline.TrainReport, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
