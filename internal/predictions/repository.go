package predictions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/internal/patients"
	"github.com/clinvital/vitalis/internal/pipeline"
	"github.com/clinvital/vitalis/pkg/pagination"
	"github.com/clinvital/vitalis/pkg/query"
	"github.com/clinvital/vitalis/pkg/repository"
)

const predictionColumns = `id, patient_id, predicted, ranked, created_at`

type repo struct {
	db         *sql.DB
	runtime    *pipeline.Runtime
	patients   patients.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a prediction repository implementing the System interface.
func New(
	db *sql.DB,
	runtime *pipeline.Runtime,
	patients patients.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		runtime:    runtime,
		patients:   patients,
		logger:     logger.With("system", "predictions"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.runtime, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Prediction], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count predictions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPrediction)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Prediction, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPrediction)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) History(ctx context.Context, patientID uuid.UUID) ([]Prediction, error) {
	qb := query.NewBuilder(projection, defaultSort)
	Filters{PatientID: &patientID}.Apply(qb)

	q, args := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanPrediction)
	if err != nil {
		return nil, fmt.Errorf("query prediction history: %w", err)
	}
	return items, nil
}

func (r *repo) Predict(ctx context.Context, patientID uuid.UUID) (*Prediction, *Assessment, error) {
	patient, err := r.patients.Find(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}

	result, err := r.runtime.Predict(ctx, patient.Age, patient.Vitals)
	if err != nil {
		return nil, nil, err
	}

	predictedJSON, err := json.Marshal(result.Predicted)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal predicted: %w", err)
	}
	rankedJSON, err := json.Marshal(result.Ranked)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal ranked: %w", err)
	}

	insertQ := `
		INSERT INTO predictions(patient_id, predicted, ranked)
		VALUES ($1, $2, $3)
		RETURNING ` + predictionColumns

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Prediction, error) {
		stored, err := repository.QueryOne(ctx, tx, insertQ,
			[]any{patientID, predictedJSON, rankedJSON},
			scanPrediction,
		)
		if err != nil {
			return Prediction{}, fmt.Errorf("insert prediction: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE patients SET diseases = $1, updated_at = NOW() WHERE id = $2",
			predictedJSON, patientID,
		); err != nil {
			return Prediction{}, fmt.Errorf("record patient diseases: %w", err)
		}

		return stored, nil
	})

	if err != nil {
		return nil, nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	assessment := Assess(p.Predicted, p.Ranked)

	r.logger.Info("prediction stored",
		"id", p.ID,
		"patient_id", patientID,
		"predicted", p.Predicted,
	)
	return &p, &assessment, nil
}

func (r *repo) Preview(ctx context.Context, cmd PreviewCommand) (*Assessment, error) {
	if cmd.Age < patients.MinAge || cmd.Age > patients.MaxAge {
		return nil, fmt.Errorf(
			"%w: age must be between %d and %d",
			patients.ErrValidation, patients.MinAge, patients.MaxAge,
		)
	}
	for name, value := range cmd.Vitals {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w: vital %s must be a finite number", patients.ErrValidation, name)
		}
	}

	result, err := r.runtime.Predict(ctx, cmd.Age, cmd.Vitals)
	if err != nil {
		return nil, err
	}

	assessment := Assess(result.Predicted, result.Ranked)
	return &assessment, nil
}

func (r *repo) Train(ctx context.Context) (*pipeline.TrainReport, error) {
	return r.runtime.Train(ctx)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM predictions WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prediction deleted", "id", id)
	return nil
}
