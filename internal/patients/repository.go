package patients

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/pkg/pagination"
	"github.com/clinvital/vitalis/pkg/query"
	"github.com/clinvital/vitalis/pkg/repository"
)

const patientColumns = `id, name, age, gender, vitals, diseases, created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	maxUpload  int64
}

// New creates a patient repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config, maxUpload int64) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "patients"),
		pagination: pagination,
		maxUpload:  maxUpload,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination, r.maxUpload)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Patient], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Gender")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPatient)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Patient, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPatient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Patient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	vitalsJSON, diseasesJSON, err := encodeRecord(cmd.Vitals, cmd.Diseases)
	if err != nil {
		return nil, err
	}

	insertQ := `
		INSERT INTO patients(name, age, gender, vitals, diseases)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + patientColumns

	insertArgs := []any{cmd.Name, cmd.Age, NormalizeGender(cmd.Gender), vitalsJSON, diseasesJSON}

	p, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanPatient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("patient created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Patient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	vitalsJSON, err := json.Marshal(orEmptyVitals(cmd.Vitals))
	if err != nil {
		return nil, fmt.Errorf("marshal vitals: %w", err)
	}

	updateQ := `
		UPDATE patients
		SET name = $1, age = $2, gender = $3, vitals = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + patientColumns

	updateArgs := []any{cmd.Name, cmd.Age, NormalizeGender(cmd.Gender), vitalsJSON, id}

	p, err := repository.QueryOne(ctx, r.db, updateQ, updateArgs, scanPatient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("patient updated", "id", p.ID)
	return &p, nil
}

func (r *repo) RecordDiseases(ctx context.Context, id uuid.UUID, diseases []string) (*Patient, error) {
	if diseases == nil {
		diseases = []string{}
	}

	diseasesJSON, err := json.Marshal(diseases)
	if err != nil {
		return nil, fmt.Errorf("marshal diseases: %w", err)
	}

	updateQ := `
		UPDATE patients
		SET diseases = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + patientColumns

	p, err := repository.QueryOne(ctx, r.db, updateQ, []any{diseasesJSON, id}, scanPatient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("patient diseases recorded", "id", p.ID, "diseases", p.Diseases)
	return &p, nil
}

func (r *repo) Conditions(ctx context.Context, id uuid.UUID) ([]string, error) {
	p, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Diseases, nil
}

func (r *repo) All(ctx context.Context) ([]Patient, error) {
	q, args := query.NewBuilder(projection, query.SortField{Field: "CreatedAt"}).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanPatient)
	if err != nil {
		return nil, fmt.Errorf("query all patients: %w", err)
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM patients WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("patient deleted", "id", id)
	return nil
}

func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		AgeBuckets:    map[string]int{},
		GenderCounts:  map[string]int{},
		DiseaseCounts: map[string]int{},
	}

	summaryQ := `
		SELECT COUNT(*),
			   COALESCE(AVG(age), 0),
			   COUNT(*) FILTER (WHERE diseases = '[]'::jsonb)
		FROM patients`

	if err := r.db.QueryRowContext(ctx, summaryQ).
		Scan(&stats.Total, &stats.AverageAge, &stats.Healthy); err != nil {
		return nil, fmt.Errorf("patient summary: %w", err)
	}

	ageQ := fmt.Sprintf(
		`SELECT %s AS bucket, COUNT(*) FROM patients GROUP BY bucket`,
		ageBucketCase(),
	)
	if err := r.countInto(ctx, ageQ, stats.AgeBuckets); err != nil {
		return nil, fmt.Errorf("age buckets: %w", err)
	}

	genderQ := `SELECT gender, COUNT(*) FROM patients GROUP BY gender`
	if err := r.countInto(ctx, genderQ, stats.GenderCounts); err != nil {
		return nil, fmt.Errorf("gender counts: %w", err)
	}

	diseaseQ := `
		SELECT d, COUNT(*)
		FROM patients, jsonb_array_elements_text(diseases) AS d
		GROUP BY d`
	if err := r.countInto(ctx, diseaseQ, stats.DiseaseCounts); err != nil {
		return nil, fmt.Errorf("disease counts: %w", err)
	}

	return stats, nil
}

func (r *repo) countInto(ctx context.Context, q string, target map[string]int) error {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		target[key] = count
	}

	return rows.Err()
}

func encodeRecord(vitals map[string]float64, diseases []string) ([]byte, []byte, error) {
	vitalsJSON, err := json.Marshal(orEmptyVitals(vitals))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal vitals: %w", err)
	}

	if diseases == nil {
		diseases = []string{}
	}
	diseasesJSON, err := json.Marshal(diseases)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal diseases: %w", err)
	}

	return vitalsJSON, diseasesJSON, nil
}

func orEmptyVitals(vitals map[string]float64) map[string]float64 {
	if vitals == nil {
		return map[string]float64{}
	}
	return vitals
}
