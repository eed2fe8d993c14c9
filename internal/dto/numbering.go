package dto

import "github.com/ledgerforge/glposting/internal/core/domain"

// IssueNumberRequest asks the numbering authority for the next formatted number of a
// caller-owned document type. Prefix and width are optional overrides of the built-in
// defaults.
type IssueNumberRequest struct {
	DocType domain.DocumentType `json:"docType" binding:"required"`
	Prefix  string              `json:"prefix,omitempty" binding:"omitempty,max=10"`
	Width   int                 `json:"width,omitempty" binding:"omitempty,min=1,max=12"`
}

// IssueNumberResponse returns the issued number.
type IssueNumberResponse struct {
	DocType domain.DocumentType `json:"docType"`
	Number  string              `json:"number"`
}
