package domain

// DocumentType identifies a numbered document family. Numbering sequences are scoped by
// (tenant, document type, prefix).
type DocumentType string

const (
	DocJournalEntry    DocumentType = "JOURNAL_ENTRY"
	DocSalesInvoice    DocumentType = "SALES_INVOICE"
	DocPurchaseInvoice DocumentType = "PURCHASE_INVOICE"
	DocCreditNote      DocumentType = "CREDIT_NOTE"
	DocDeliveryOrder   DocumentType = "DELIVERY_ORDER"
	DocQuotation       DocumentType = "QUOTATION"
	DocPaymentVoucher  DocumentType = "PAYMENT_VOUCHER"
)

// DefaultNumberWidth is the minimum digit count of the numeric suffix. It is a floor,
// not a cap: sequences keep growing past it (JE-99999 -> JE-100000).
const DefaultNumberWidth = 5

var defaultPrefixes = map[DocumentType]string{
	DocJournalEntry:    "JE-",
	DocSalesInvoice:    "INV-",
	DocPurchaseInvoice: "PIV-",
	DocCreditNote:      "CN-",
	DocDeliveryOrder:   "DO-",
	DocQuotation:       "QT-",
	DocPaymentVoucher:  "PV-",
}

// DefaultPrefix returns the built-in prefix for a document type. Callers may override it
// per generate call.
func DefaultPrefix(docType DocumentType) (string, bool) {
	p, ok := defaultPrefixes[docType]
	return p, ok
}

// SourceDocument is a number registered for a caller-owned document (invoice, credit
// note, ...). The numbering authority scans this registry when deriving the next number
// for non-journal document types.
type SourceDocument struct {
	DocumentID string       `json:"documentID"`
	TenantID   string       `json:"tenantID"`
	DocType    DocumentType `json:"docType"`
	DocNumber  string       `json:"docNumber"`
	AuditFields
}
