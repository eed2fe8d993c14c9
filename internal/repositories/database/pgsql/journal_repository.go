package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	"github.com/ledgerforge/glposting/internal/models"
	"github.com/ledgerforge/glposting/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const insertEntryQuery = `
	INSERT INTO journal_entries (
		entry_id, tenant_id, entry_number, entry_date, description,
		reference_type, reference_id, status, posted_at,
		original_entry_id, reversing_entry_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

const insertLineQuery = `
	INSERT INTO journal_lines (
		line_id, entry_id, account_id, line_type, amount, notes, line_no,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// insertEntryTx inserts the header row within the given transaction.
func insertEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelEntry(entry)
	_, err := tx.Exec(ctx, insertEntryQuery,
		m.EntryID,
		m.TenantID,
		m.EntryNumber,
		m.EntryDate,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		m.Status,
		m.PostedAt,
		m.OriginalEntryID,
		m.ReversingEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}
	return nil
}

// insertLinesTx batches the line inserts within the given transaction.
func insertLinesTx(ctx context.Context, tx pgx.Tx, entryID string, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelLine(line)
		batch.Queue(insertLineQuery,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.LineType,
			m.Amount,
			m.Notes,
			m.LineNo,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+entryID, err)
	}
	return nil
}

// SaveEntry persists an entry header and its lines in a single database transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	if err := insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	if err := insertLinesTx(ctx, tx, entry.EntryID, lines); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit entry "+entry.EntryID, err)
	}
	return nil
}

// SaveReversal persists the reversing entry and flips the original to VOID in one
// database transaction. The original must still be POSTED when the update lands,
// otherwise the whole operation rolls back with ErrConflict.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.JournalLine, originalEntryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntryTx(ctx, tx, reversing); err != nil {
		return err
	}
	if err := insertLinesTx(ctx, tx, reversing.EntryID, lines); err != nil {
		return err
	}

	voidQuery := `
		UPDATE journal_entries
		SET status = $1, reversing_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $5 AND tenant_id = $6 AND status = $7;
	`
	tag, err := tx.Exec(ctx, voidQuery,
		models.EntryVoid,
		reversing.EntryID,
		reversing.LastUpdatedAt,
		reversing.LastUpdatedBy,
		originalEntryID,
		reversing.TenantID,
		models.EntryPosted,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void original entry "+originalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		// Lost the race: someone else already voided it.
		return apperrors.ErrConflict
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit reversal of entry "+originalEntryID, err)
	}
	return nil
}

const selectEntryColumns = `
	entry_id, tenant_id, entry_number, entry_date, description,
	reference_type, reference_id, status, posted_at,
	original_entry_id, reversing_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	var postedAt sql.NullTime
	var originalID sql.NullString
	var reversingID sql.NullString

	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Status,
		&postedAt,
		&originalID,
		&reversingID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if postedAt.Valid {
		t := postedAt.Time
		m.PostedAt = &t
	}
	if originalID.Valid {
		m.OriginalEntryID = &originalID.String
	}
	if reversingID.Valid {
		m.ReversingEntryID = &reversingID.String
	}
	return &m, nil
}

// FindEntryByID retrieves an entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, line_type, amount, notes, line_no,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.LineType,
			&m.Amount,
			&m.Notes,
			&m.LineNo,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, mapping.ToDomainLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}
	return lines, nil
}

// ListEntriesByTenant retrieves entries for a tenant, newest first.
func (r *PgxJournalRepository) ListEntriesByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + selectEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1
		ORDER BY entry_date DESC, entry_number DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for tenant "+tenantID, err)
		}
		entries = append(entries, mapping.ToDomainEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for tenant "+tenantID, err)
	}
	return entries, nil
}
