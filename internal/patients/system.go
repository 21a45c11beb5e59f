package patients

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/pkg/pagination"
)

// System defines the public contract for patient domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Patient], error)

	Find(ctx context.Context, id uuid.UUID) (*Patient, error)
	Create(ctx context.Context, cmd CreateCommand) (*Patient, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// RecordDiseases replaces a patient's recorded conditions, typically
	// after a prediction run.
	RecordDiseases(ctx context.Context, id uuid.UUID, diseases []string) (*Patient, error)

	// Conditions returns a patient's recorded conditions. Satisfies
	// diet.ConditionSource.
	Conditions(ctx context.Context, id uuid.UUID) ([]string, error)

	// All returns every patient record, used to assemble training datasets.
	All(ctx context.Context) ([]Patient, error)

	Stats(ctx context.Context) (*Stats, error)

	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	Export(ctx context.Context, w io.Writer) error
}
