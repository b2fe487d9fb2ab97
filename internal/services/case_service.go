package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omize10/probatepath-sub002/internal/distribution"
	"github.com/omize10/probatepath-sub002/internal/forms"
	"github.com/omize10/probatepath-sub002/internal/logger"
	"github.com/omize10/probatepath-sub002/internal/models"
	"github.com/omize10/probatepath-sub002/internal/priority"
	"github.com/omize10/probatepath-sub002/internal/render"
	"github.com/omize10/probatepath-sub002/internal/repository"
)

// Service-level errors.
var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrNoApplicant        = errors.New("case requires at least one applicant")
	ErrPrimaryApplicant   = errors.New("exactly one applicant must be marked primary")
	ErrPriorityBlocked    = errors.New("a higher-priority relative withholds consent")
	ErrPriorityUnresolved = errors.New("priority must be resolved before distribution")
	ErrNeedsInput         = errors.New("required relationship data is missing")
	ErrAlreadyConfirmed   = errors.New("distribution has already been confirmed")
	ErrNotConfirmed       = errors.New("distribution must be confirmed before documents are generated")
	ErrDocumentNotFound   = errors.New("document not found")
)

// CaseService defines the business operations of the estate filing engine:
// priority resolution, intestate distribution, form selection and document
// generation.
type CaseService interface {
	// CreateCase validates invariants and persists a new case.
	CreateCase(ctx context.Context, c *models.EstateCase) error

	// GetCase fetches a case. Returns ErrCaseNotFound when absent.
	GetCase(ctx context.Context, id uuid.UUID) (*models.EstateCase, error)

	// ResolvePriority runs the priority chain for the case's primary
	// applicant and persists the resulting status. A blocked outcome is a
	// state, not an error; the resolution names the required actions.
	ResolvePriority(ctx context.Context, id uuid.UUID) (priority.Resolution, error)

	// ComputeDistribution derives the advisory heir list. On an
	// administration-path case the priority chain must be resolved and clear.
	ComputeDistribution(ctx context.Context, id uuid.UUID) ([]models.HeirEntry, error)

	// ConfirmDistribution recomputes the heir list from current family data,
	// verifies the share-sum invariant, and atomically writes the confirmed
	// list. Returns ErrAlreadyConfirmed on re-confirmation.
	ConfirmDistribution(ctx context.Context, id uuid.UUID) ([]models.HeirEntry, error)

	// RequiredForms returns the ordered form set the case legally requires.
	RequiredForms(ctx context.Context, id uuid.UUID) ([]models.FormRequirement, error)

	// GenerateDocuments maps and renders every required form sequentially.
	// A failure on any form aborts the batch and reports the failing code;
	// nothing from a failed batch is persisted.
	GenerateDocuments(ctx context.Context, id uuid.UUID) ([]models.GeneratedDocument, error)

	// ListDocuments returns the generated-document manifest for a case.
	ListDocuments(ctx context.Context, id uuid.UUID) ([]models.GeneratedDocument, error)

	// GetDocument fetches the latest rendered content for one form.
	GetDocument(ctx context.Context, id uuid.UUID, code models.FormCode) (*models.GeneratedDocument, error)
}

// caseService is the concrete implementation of CaseService.
type caseService struct {
	cases    repository.CaseRepository
	docs     repository.DocumentRepository
	renderer render.DocumentRenderer
	log      *logger.Logger
}

// NewCaseService creates a new instance of CaseService.
func NewCaseService(cases repository.CaseRepository, docs repository.DocumentRepository, renderer render.DocumentRenderer, log *logger.Logger) CaseService {
	return &caseService{
		cases:    cases,
		docs:     docs,
		renderer: renderer,
		log:      log,
	}
}

// CreateCase enforces aggregate invariants and persists the case.
func (s *caseService) CreateCase(ctx context.Context, c *models.EstateCase) error {
	if len(c.Applicants) == 0 && c.DraftApplicantName == "" {
		return ErrNoApplicant
	}
	if err := validatePrimaryApplicant(c); err != nil {
		return err
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.cases.Create(ctx, c); err != nil {
		s.log.Error("Failed to create case", err, map[string]interface{}{
			"case_id": c.ID.String(),
		})
		return fmt.Errorf("failed to create case: %w", err)
	}

	s.log.Info("Case created", map[string]interface{}{
		"case_id":   c.ID.String(),
		"path_type": string(c.PathType),
		"registry":  c.Registry,
	})
	return nil
}

// GetCase fetches a case and maps the repository's not-found convention to a
// domain error.
func (s *caseService) GetCase(ctx context.Context, id uuid.UUID) (*models.EstateCase, error) {
	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query case", err, map[string]interface{}{
			"case_id": id.String(),
		})
		return nil, fmt.Errorf("failed to query case: %w", err)
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

// ResolvePriority evaluates the priority chain and persists the status.
func (s *caseService) ResolvePriority(ctx context.Context, id uuid.UUID) (priority.Resolution, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return priority.Resolution{}, err
	}

	applicantTier := models.TierUnknown
	if p := c.PrimaryApplicant(); p != nil {
		applicantTier = p.Tier
	}

	res := priority.Resolve(c.Family, applicantTier)

	if err := s.cases.UpdatePriorityStatus(ctx, id, res.Status); err != nil {
		s.log.Error("Failed to persist priority status", err, map[string]interface{}{
			"case_id": id.String(),
			"status":  string(res.Status),
		})
		return priority.Resolution{}, fmt.Errorf("failed to persist priority status: %w", err)
	}

	s.log.Info("Priority resolved", map[string]interface{}{
		"case_id": id.String(),
		"status":  string(res.Status),
		"actions": len(res.RequiredActions),
	})
	return res, nil
}

// ComputeDistribution derives the advisory heir list for the case.
func (s *caseService) ComputeDistribution(ctx context.Context, id uuid.UUID) ([]models.HeirEntry, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireDistributable(c); err != nil {
		return nil, err
	}

	heirs, err := s.calculate(c)
	if err != nil {
		return nil, err
	}

	s.log.Info("Distribution computed", map[string]interface{}{
		"case_id": id.String(),
		"heirs":   len(heirs),
	})
	return heirs, nil
}

// ConfirmDistribution is the human confirmation gate: it recomputes the heir
// list from the case's current family data and performs the single atomic
// write that makes the list authoritative.
func (s *caseService) ConfirmDistribution(ctx context.Context, id uuid.UUID) ([]models.HeirEntry, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.DistributionConfirmed {
		return nil, ErrAlreadyConfirmed
	}
	if err := s.requireDistributable(c); err != nil {
		return nil, err
	}

	heirs, err := s.calculate(c)
	if err != nil {
		return nil, err
	}
	if err := distribution.VerifyShares(heirs); err != nil {
		// A broken sum is a calculation defect; reject before confirmation.
		return nil, err
	}

	confirmed, err := s.cases.ConfirmDistribution(ctx, id, heirs)
	if err != nil {
		s.log.Error("Failed to confirm distribution", err, map[string]interface{}{
			"case_id": id.String(),
		})
		return nil, fmt.Errorf("failed to confirm distribution: %w", err)
	}
	if !confirmed {
		return nil, ErrAlreadyConfirmed
	}

	s.log.Info("Distribution confirmed", map[string]interface{}{
		"case_id": id.String(),
		"heirs":   len(heirs),
	})
	return heirs, nil
}

// RequiredForms returns the ordered form set for the case.
func (s *caseService) RequiredForms(ctx context.Context, id uuid.UUID) ([]models.FormRequirement, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}
	return forms.SelectForms(c), nil
}

// GenerateDocuments runs the selector -> mapper -> renderer pipeline once per
// required form, in selector order. The batch aborts on the first failure and
// the error names the failing form; previously persisted documents from
// earlier batches are never touched.
func (s *caseService) GenerateDocuments(ctx context.Context, id uuid.UUID) ([]models.GeneratedDocument, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireGeneratable(c); err != nil {
		return nil, err
	}

	required := forms.SelectForms(c)
	docs := make([]models.GeneratedDocument, 0, len(required))

	for _, req := range required {
		fields, err := forms.MapForm(c, req.Code)
		if err != nil {
			s.log.Error("Field mapping failed", err, map[string]interface{}{
				"case_id":   id.String(),
				"form_code": string(req.Code),
			})
			return nil, fmt.Errorf("failed to generate form %s: %w", req.Code, err)
		}

		doc, err := s.renderer.Render(ctx, id, req.Code, fields)
		if err != nil {
			s.log.Error("Form rendering failed", err, map[string]interface{}{
				"case_id":   id.String(),
				"form_code": string(req.Code),
			})
			return nil, fmt.Errorf("failed to generate form %s: %w", req.Code, err)
		}
		docs = append(docs, doc)
	}

	if err := s.docs.SaveBatch(ctx, docs); err != nil {
		s.log.Error("Failed to persist document batch", err, map[string]interface{}{
			"case_id": id.String(),
			"count":   len(docs),
		})
		return nil, fmt.Errorf("failed to persist generated documents: %w", err)
	}

	s.log.Info("Document batch generated", map[string]interface{}{
		"case_id": id.String(),
		"count":   len(docs),
	})
	return docs, nil
}

// ListDocuments returns the manifest for a case.
func (s *caseService) ListDocuments(ctx context.Context, id uuid.UUID) ([]models.GeneratedDocument, error) {
	if _, err := s.GetCase(ctx, id); err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByCase(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument fetches the latest content for one form code.
func (s *caseService) GetDocument(ctx context.Context, id uuid.UUID, code models.FormCode) (*models.GeneratedDocument, error) {
	if _, err := s.GetCase(ctx, id); err != nil {
		return nil, err
	}
	doc, err := s.docs.GetContent(ctx, id, code)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

// requireDistributable enforces the administration-path invariant: the
// priority chain must be resolved and clear before distribution runs.
func (s *caseService) requireDistributable(c *models.EstateCase) error {
	if c.PathType != models.PathAdministration {
		return nil
	}
	switch c.PriorityStatus {
	case models.PriorityClear:
		return nil
	case models.PriorityBlocked:
		return fmt.Errorf("%w: %s", ErrPriorityBlocked, blockingRelative(c))
	case models.PriorityNeedsInput:
		return ErrNeedsInput
	default:
		return ErrPriorityUnresolved
	}
}

// requireGeneratable gates document generation. On the administration path
// the confirmed heir list feeds the applicant affidavit, so distribution must
// be confirmed and the priority chain clear.
func (s *caseService) requireGeneratable(c *models.EstateCase) error {
	if err := s.requireDistributable(c); err != nil {
		return err
	}
	if c.PathType == models.PathAdministration && !c.DistributionConfirmed {
		return ErrNotConfirmed
	}
	return nil
}

// calculate derives heirs from the declared family of a case.
func (s *caseService) calculate(c *models.EstateCase) ([]models.HeirEntry, error) {
	applicantTier := models.TierUnknown
	if p := c.PrimaryApplicant(); p != nil {
		applicantTier = p.Tier
	}
	heirs, err := distribution.Calculate(c.Family, applicantTier)
	if err != nil {
		return nil, fmt.Errorf("distribution could not be computed: %w", err)
	}
	return heirs, nil
}

// blockingRelative names the specific relative whose withheld consent blocks
// the case, so the caller can surface an actionable message.
func blockingRelative(c *models.EstateCase) string {
	applicantTier := models.TierUnknown
	if p := c.PrimaryApplicant(); p != nil {
		applicantTier = p.Tier
	}
	res := priority.Resolve(c.Family, applicantTier)
	for _, action := range res.RequiredActions {
		if action.Kind == priority.ActionResolveConsent {
			if action.Name != "" {
				return fmt.Sprintf("%s (%s) must consent or the dispute must be resolved", action.Name, action.Relationship)
			}
			return action.Detail
		}
	}
	return "a higher-priority relative must consent before the case can proceed"
}

// validatePrimaryApplicant enforces that at most one applicant carries the
// primary flag and, when applicants exist, exactly one does.
func validatePrimaryApplicant(c *models.EstateCase) error {
	if len(c.Applicants) == 0 {
		return nil
	}
	primaries := 0
	for _, a := range c.Applicants {
		if a.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		return fmt.Errorf("%w, got %d", ErrPrimaryApplicant, primaries)
	}
	return nil
}
