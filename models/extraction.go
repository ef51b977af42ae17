package models

import "encoding/json"

// NotAvailable is the value of any field the extraction could not find
const NotAvailable = "N/A"

// Field labels used as keys in the summary payload
const (
	FieldDocumentType      = "Document Type"
	FieldKeyProvisions     = "Key Provisions"
	FieldCourtsDecision    = "Court's Decision"
	FieldLegalImplications = "Legal Implications"
	FieldSimplifiedSummary = "Simplified Summary"
)

// ExtractionResult holds the labeled fields parsed out of a model reply
type ExtractionResult struct {
	DocumentType      string
	KeyProvisions     string
	CourtsDecision    string
	LegalImplications string
	SimplifiedSummary string
}

// NewExtractionResult returns a result with every field set to NotAvailable
func NewExtractionResult() ExtractionResult {
	return ExtractionResult{
		DocumentType:      NotAvailable,
		KeyProvisions:     NotAvailable,
		CourtsDecision:    NotAvailable,
		LegalImplications: NotAvailable,
		SimplifiedSummary: NotAvailable,
	}
}

// Map returns the result keyed by field label
func (r ExtractionResult) Map() map[string]string {
	return map[string]string{
		FieldDocumentType:      r.DocumentType,
		FieldKeyProvisions:     r.KeyProvisions,
		FieldCourtsDecision:    r.CourtsDecision,
		FieldLegalImplications: r.LegalImplications,
		FieldSimplifiedSummary: r.SimplifiedSummary,
	}
}

// MarshalJSON encodes the result with the field labels as keys.
// Struct tags can't carry the apostrophe in "Court's Decision".
func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}
