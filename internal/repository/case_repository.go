package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/omize10/probatepath-sub002/internal/database"
	"github.com/omize10/probatepath-sub002/internal/models"
)

// CaseRepository defines the data access operations for estate cases.
type CaseRepository interface {
	// Create inserts a new case.
	Create(ctx context.Context, c *models.EstateCase) error

	// GetByID fetches a case by its identifier.
	// Returns nil, nil if no case is found (not an error).
	// Returns error only for actual database failures.
	GetByID(ctx context.Context, id uuid.UUID) (*models.EstateCase, error)

	// UpdatePriorityStatus persists the outcome of priority resolution.
	UpdatePriorityStatus(ctx context.Context, id uuid.UUID, status models.PriorityStatus) error

	// ConfirmDistribution writes the confirmed heir list and sets the
	// confirmation flag in a single atomic update. It returns false when the
	// case was already confirmed (the update matched no row).
	ConfirmDistribution(ctx context.Context, id uuid.UUID, heirs []models.HeirEntry) (bool, error)
}

// caseRepository is the concrete implementation of CaseRepository.
type caseRepository struct {
	db *database.Database
}

// NewCaseRepository creates a new instance of CaseRepository.
func NewCaseRepository(db *database.Database) CaseRepository {
	return &caseRepository{db: db}
}

const caseColumns = `
	id,
	registry,
	path_type,
	deceased,
	applicants,
	family,
	heirs,
	assets,
	draft_applicant_name,
	has_will,
	will_has_alterations,
	codicil_count,
	has_minor_beneficiaries,
	priority_status,
	distribution_confirmed,
	created_at,
	updated_at
`

// Create inserts the case with its nested family, applicant and asset
// structures serialized as JSONB.
func (r *caseRepository) Create(ctx context.Context, c *models.EstateCase) error {
	deceased, applicants, family, heirs, assets, err := marshalCaseJSON(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO estate_cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
	`

	_, err = r.db.Pool.Exec(ctx, query,
		c.ID,
		c.Registry,
		string(c.PathType),
		deceased,
		applicants,
		family,
		heirs,
		assets,
		c.DraftApplicantName,
		c.HasWill,
		c.WillHasAlterations,
		c.CodicilCount,
		c.HasMinorBeneficiaries,
		string(c.PriorityStatus),
		c.DistributionConfirmed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert case %s: %w", c.ID, err)
	}
	return nil
}

// GetByID fetches and rehydrates a case aggregate.
func (r *caseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EstateCase, error) {
	query := `SELECT ` + caseColumns + ` FROM estate_cases WHERE id = $1`

	var (
		c                                           models.EstateCase
		pathType, priorityStatus                    string
		deceased, applicants, family, heirs, assets []byte
	)

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Registry,
		&pathType,
		&deceased,
		&applicants,
		&family,
		&heirs,
		&assets,
		&c.DraftApplicantName,
		&c.HasWill,
		&c.WillHasAlterations,
		&c.CodicilCount,
		&c.HasMinorBeneficiaries,
		&priorityStatus,
		&c.DistributionConfirmed,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query case %s: %w", id, err)
	}

	c.PathType = models.PathType(pathType)
	c.PriorityStatus = models.PriorityStatus(priorityStatus)

	if err := unmarshalCaseJSON(&c, deceased, applicants, family, heirs, assets); err != nil {
		return nil, fmt.Errorf("failed to decode case %s: %w", id, err)
	}
	return &c, nil
}

// UpdatePriorityStatus persists a freshly resolved priority status.
func (r *caseRepository) UpdatePriorityStatus(ctx context.Context, id uuid.UUID, status models.PriorityStatus) error {
	query := `UPDATE estate_cases SET priority_status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update priority status for case %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("case %s not found for priority status update", id)
	}
	return nil
}

// ConfirmDistribution performs the single atomic transition from a derived
// heir list to the authoritative one. The guard on distribution_confirmed
// makes re-confirmation a no-op reported to the caller.
func (r *caseRepository) ConfirmDistribution(ctx context.Context, id uuid.UUID, heirs []models.HeirEntry) (bool, error) {
	heirsJSON, err := json.Marshal(heirs)
	if err != nil {
		return false, fmt.Errorf("failed to encode heirs for case %s: %w", id, err)
	}

	query := `
		UPDATE estate_cases
		SET heirs = $2, distribution_confirmed = true, updated_at = now()
		WHERE id = $1 AND distribution_confirmed = false
	`

	tag, err := r.db.Pool.Exec(ctx, query, id, heirsJSON)
	if err != nil {
		return false, fmt.Errorf("failed to confirm distribution for case %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func marshalCaseJSON(c *models.EstateCase) (deceased, applicants, family, heirs, assets []byte, err error) {
	if deceased, err = json.Marshal(c.Deceased); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode deceased: %w", err)
	}
	if applicants, err = json.Marshal(c.Applicants); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode applicants: %w", err)
	}
	if family, err = json.Marshal(c.Family); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode family: %w", err)
	}
	if heirs, err = json.Marshal(c.Heirs); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode heirs: %w", err)
	}
	if assets, err = json.Marshal(c.Assets); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode assets: %w", err)
	}
	return deceased, applicants, family, heirs, assets, nil
}

func unmarshalCaseJSON(c *models.EstateCase, deceased, applicants, family, heirs, assets []byte) error {
	if err := json.Unmarshal(deceased, &c.Deceased); err != nil {
		return fmt.Errorf("deceased: %w", err)
	}
	if err := json.Unmarshal(applicants, &c.Applicants); err != nil {
		return fmt.Errorf("applicants: %w", err)
	}
	if err := json.Unmarshal(family, &c.Family); err != nil {
		return fmt.Errorf("family: %w", err)
	}
	if err := json.Unmarshal(heirs, &c.Heirs); err != nil {
		return fmt.Errorf("heirs: %w", err)
	}
	if err := json.Unmarshal(assets, &c.Assets); err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	return nil
}
