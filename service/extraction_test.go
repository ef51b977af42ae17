package service

import (
	"testing"

	"legalsummary-backend/models"

	"github.com/stretchr/testify/assert"
)

const templatedReply = `Document: Civil Appeal No. 1234 of 2023
Key Provisions: The contract pertained to the supply of industrial machinery, with a total value of INR 5,00,00,000
Court's Decision: Accordingly, this Court sets aside the judgment of the High Court and directs the Respondent to pay damages amounting to INR 1,50,00,000 with interest
Legal Implications: This judgment shall serve as a precedent for future cases involving the interpretation of force majeure clauses in commercial contracts.
Summary: The Supreme Court held that the supplier could not rely on force majeure.
The buyer is entitled to damages.
`

func TestParseSummaryTextTemplatedReply(t *testing.T) {
	result := ParseSummaryText(templatedReply)

	assert.Equal(t, models.ExtractionResult{
		DocumentType:      "Civil Appeal No. 1234 of 2023",
		KeyProvisions:     "The contract was for the supply of industrial machinery with a total value of INR 5,00,00,000.",
		CourtsDecision:    "The Supreme Court set aside the judgment of the High Court and directed the Respondent to pay damages amounting to INR 1,50,00,000 with interest.",
		LegalImplications: "This judgment serves as a precedent for future cases involving the interpretation of force majeure clauses in commercial contracts.",
		SimplifiedSummary: "The Supreme Court held that the supplier could not rely on force majeure.\nThe buyer is entitled to damages.",
	}, result)
}

func TestParseSummaryTextNoMarkers(t *testing.T) {
	result := ParseSummaryText("The model declined to answer in the requested format.")

	assert.Equal(t, models.NewExtractionResult(), result)
	for label, value := range result.Map() {
		assert.Equal(t, models.NotAvailable, value, label)
	}
}

func TestParseSummaryTextEmpty(t *testing.T) {
	assert.Equal(t, models.NewExtractionResult(), ParseSummaryText(""))
}

func TestParseSummaryTextIdempotent(t *testing.T) {
	first := ParseSummaryText(templatedReply)
	second := ParseSummaryText(templatedReply)

	assert.Equal(t, first, second)
}

func TestParseSummaryTextFieldsAreIndependent(t *testing.T) {
	result := ParseSummaryText("Summary:   only the summary\n\n  spans lines  \n")

	assert.Equal(t, models.NotAvailable, result.DocumentType)
	assert.Equal(t, models.NotAvailable, result.KeyProvisions)
	assert.Equal(t, models.NotAvailable, result.CourtsDecision)
	assert.Equal(t, models.NotAvailable, result.LegalImplications)
	assert.Equal(t, "only the summary\n\n  spans lines", result.SimplifiedSummary)
}

func TestParseSummaryTextDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"same line", "Document:   Writ Petition   \nother", "Writ Petition"},
		{"first occurrence wins", "Document: Appeal\nDocument: Order", "Appeal"},
		{"marker on its own line", "Document:\n\nSale Deed\nmore", "Sale Deed"},
		{"label with extra word does not match", "- Document Type: Judgment", models.NotAvailable},
		{"no-break space before newline", "Document:\u00a0\nSale Deed\nmore", "Sale Deed"},
		{"vertical tab before newline", "Document:\v\nSale Deed", "Sale Deed"},
		{"separator characters trimmed", "Document:\x1f Gift Deed \x1c\nmore", "Gift Deed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSummaryText(tt.text).DocumentType)
		})
	}
}

func TestParseSummaryTextParaphraseYieldsNA(t *testing.T) {
	reply := "The contract concerned the supply of industrial machinery worth INR 5 crore.\n" +
		"The Court set aside the High Court judgment and awarded damages.\n" +
		"This judgment will serve as a precedent for force majeure clauses."

	result := ParseSummaryText(reply)

	assert.Equal(t, models.NotAvailable, result.KeyProvisions)
	assert.Equal(t, models.NotAvailable, result.CourtsDecision)
	assert.Equal(t, models.NotAvailable, result.LegalImplications)
}

func TestParseSummaryTextLegalImplicationsNeedsTrailingCharacter(t *testing.T) {
	sentence := "This judgment shall serve as a precedent for future cases involving the interpretation of force majeure clauses in commercial contracts"

	assert.Equal(t, models.NotAvailable, ParseSummaryText(sentence).LegalImplications)
	assert.Equal(t, models.NotAvailable, ParseSummaryText(sentence+"\n").LegalImplications)
	assert.Equal(t, legalImplicationsStatement, ParseSummaryText(sentence+";").LegalImplications)
}

func TestParseSummaryTextSimplifiedSummaryMarker(t *testing.T) {
	result := ParseSummaryText("- Simplified Summary: The appeal was allowed.\nCosts awarded.")

	assert.Equal(t, "The appeal was allowed.\nCosts awarded.", result.SimplifiedSummary)
}

func TestParseSummaryTextCapturesRestOfLineOnly(t *testing.T) {
	result := ParseSummaryText("contract pertained to the supply of industrial machinery, with a total value of  $2M \nnext line")

	assert.Equal(t, "The contract was for the supply of industrial machinery with a total value of $2M.", result.KeyProvisions)
}

func TestParseSummaryTextSummaryAfterUnicodeSpace(t *testing.T) {
	result := ParseSummaryText("Summary:\u2003\u00a0\nThe appeal was dismissed.\u3000")

	assert.Equal(t, "The appeal was dismissed.", result.SimplifiedSummary)
}
