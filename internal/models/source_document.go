package models

// SourceDocument registers an issued document number for a caller-owned document type.
type SourceDocument struct {
	DocumentID string `db:"document_id"`
	TenantID   string `db:"tenant_id"`
	DocType    string `db:"doc_type"`
	DocNumber  string `db:"doc_number"`
	AuditFields
}
