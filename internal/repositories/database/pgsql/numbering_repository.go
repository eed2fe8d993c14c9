package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	"github.com/ledgerforge/glposting/internal/utils/mapping"
)

type PgxNumberingRepository struct {
	BaseRepository
}

// newPgxNumberingRepository creates a new repository for document number scans.
func newPgxNumberingRepository(pool *pgxpool.Pool) portsrepo.NumberingRepository {
	return &PgxNumberingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NumberingRepository = (*PgxNumberingRepository)(nil)

// HighestNumber returns the highest existing number for the tenant, document type and
// prefix. Ordering by length before lexicographic order makes JE-100000 sort above
// JE-99999, which plain string comparison gets wrong.
func (r *PgxNumberingRepository) HighestNumber(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string) (string, error) {
	var query string
	var args []any
	if docType == domain.DocJournalEntry {
		query = `
			SELECT entry_number
			FROM journal_entries
			WHERE tenant_id = $1 AND entry_number LIKE $2 || '%'
			ORDER BY length(entry_number) DESC, entry_number DESC
			LIMIT 1;
		`
		args = []any{tenantID, prefix}
	} else {
		query = `
			SELECT doc_number
			FROM source_documents
			WHERE tenant_id = $1 AND doc_type = $2 AND doc_number LIKE $3 || '%'
			ORDER BY length(doc_number) DESC, doc_number DESC
			LIMIT 1;
		`
		args = []any{tenantID, string(docType), prefix}
	}

	var number string
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", apperrors.NewAppError(500, "failed to scan highest number for prefix "+prefix, err)
	}
	return number, nil
}

// NumberExists reports whether the formatted number is already taken within the
// tenant + document type scope.
func (r *PgxNumberingRepository) NumberExists(ctx context.Context, tenantID string, docType domain.DocumentType, number string) (bool, error) {
	var query string
	var args []any
	if docType == domain.DocJournalEntry {
		query = `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE tenant_id = $1 AND entry_number = $2);`
		args = []any{tenantID, number}
	} else {
		query = `SELECT EXISTS (SELECT 1 FROM source_documents WHERE tenant_id = $1 AND doc_type = $2 AND doc_number = $3);`
		args = []any{tenantID, string(docType), number}
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check number "+number, err)
	}
	return exists, nil
}

// RecordDocumentNumber registers an issued number for a caller-owned document type.
// The unique index on (tenant_id, doc_type, doc_number) is the final arbiter against
// concurrent issuers; a violation surfaces as ErrDuplicate so the caller can retry.
func (r *PgxNumberingRepository) RecordDocumentNumber(ctx context.Context, doc domain.SourceDocument) error {
	query := `
		INSERT INTO source_documents (
			document_id, tenant_id, doc_type, doc_number,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	m := mapping.ToModelSourceDocument(doc)
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.TenantID,
		m.DocType,
		m.DocNumber,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to record document number "+m.DocNumber, err)
	}
	return nil
}
