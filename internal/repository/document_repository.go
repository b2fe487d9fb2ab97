package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/omize10/probatepath-sub002/internal/database"
	"github.com/omize10/probatepath-sub002/internal/models"
)

// DocumentRepository defines the data access operations for generated court
// form documents. Documents are append-only; a regenerated form inserts a new
// row that supersedes the prior one by generation time.
type DocumentRepository interface {
	// SaveBatch inserts a batch of generated documents in one transaction so
	// a partial filing package is never persisted.
	SaveBatch(ctx context.Context, docs []models.GeneratedDocument) error

	// ListByCase returns the manifest of the latest document per form code,
	// newest first, without content.
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.GeneratedDocument, error)

	// GetContent fetches the latest rendered content for one form.
	// Returns nil, nil if no document exists (not an error).
	GetContent(ctx context.Context, caseID uuid.UUID, code models.FormCode) (*models.GeneratedDocument, error)
}

// documentRepository is the concrete implementation of DocumentRepository.
type documentRepository struct {
	db *database.Database
}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository(db *database.Database) DocumentRepository {
	return &documentRepository{db: db}
}

// SaveBatch inserts every document of a generation batch atomically.
func (r *documentRepository) SaveBatch(ctx context.Context, docs []models.GeneratedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin document batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO generated_documents (id, case_id, form_code, content, generated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, doc := range docs {
		if _, err := tx.Exec(ctx, query, doc.ID, doc.CaseID, string(doc.FormCode), doc.Content, doc.GeneratedAt); err != nil {
			return fmt.Errorf("failed to insert document %s for case %s: %w", doc.FormCode, doc.CaseID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit document batch: %w", err)
	}
	return nil
}

// ListByCase returns the latest manifest row per form code for a case.
func (r *documentRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.GeneratedDocument, error) {
	query := `
		SELECT DISTINCT ON (form_code) id, case_id, form_code, generated_at
		FROM generated_documents
		WHERE case_id = $1
		ORDER BY form_code, generated_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for case %s: %w", caseID, err)
	}
	defer rows.Close()

	var docs []models.GeneratedDocument
	for rows.Next() {
		var doc models.GeneratedDocument
		var code string
		if err := rows.Scan(&doc.ID, &doc.CaseID, &code, &doc.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		doc.FormCode = models.FormCode(code)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	if docs == nil {
		docs = []models.GeneratedDocument{}
	}
	return docs, nil
}

// GetContent fetches the newest rendered document for one form code.
func (r *documentRepository) GetContent(ctx context.Context, caseID uuid.UUID, code models.FormCode) (*models.GeneratedDocument, error) {
	query := `
		SELECT id, case_id, form_code, content, generated_at
		FROM generated_documents
		WHERE case_id = $1 AND form_code = $2
		ORDER BY generated_at DESC
		LIMIT 1
	`

	var doc models.GeneratedDocument
	var codeStr string
	err := r.db.Pool.QueryRow(ctx, query, caseID, string(code)).Scan(
		&doc.ID, &doc.CaseID, &codeStr, &doc.Content, &doc.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query document %s for case %s: %w", code, caseID, err)
	}
	doc.FormCode = models.FormCode(codeStr)
	return &doc, nil
}
