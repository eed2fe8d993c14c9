package domain_test

import (
	"testing"

	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLineTypeOpposite(t *testing.T) {
	assert.Equal(t, domain.Credit, domain.Debit.Opposite())
	assert.Equal(t, domain.Debit, domain.Credit.Opposite())
}

func TestReferenceString(t *testing.T) {
	assert.Equal(t, "sales_invoice#inv-42", domain.Reference{Type: "sales_invoice", ID: "inv-42"}.String())
	assert.Equal(t, "", domain.Reference{}.String())
}

func TestDefaultPrefix(t *testing.T) {
	prefix, ok := domain.DefaultPrefix(domain.DocSalesInvoice)
	assert.True(t, ok)
	assert.Equal(t, "INV-", prefix)

	_, ok = domain.DefaultPrefix(domain.DocumentType("NAPKIN"))
	assert.False(t, ok)
}

func TestDefaultRoleAccountCode(t *testing.T) {
	for _, entry := range domain.DefaultChart {
		code, ok := domain.DefaultRoleAccountCode(entry.Role)
		assert.True(t, ok, "role %s has no default code", entry.Role)
		assert.Equal(t, entry.Code, code)
	}

	_, ok := domain.DefaultRoleAccountCode(domain.AccountRole("PETTY_CASH"))
	assert.False(t, ok)
}
