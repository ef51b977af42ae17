package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"legalsummary-backend/generator"
	"legalsummary-backend/models"
)

// SummaryService turns a legal document into an extracted summary
type SummaryService struct {
	generator generator.Generator
}

// SummaryServiceOption is a functional option for SummaryService
type SummaryServiceOption func(*SummaryService)

// SummaryWithGenerator sets the text-generation model
func SummaryWithGenerator(gen generator.Generator) SummaryServiceOption {
	return func(s *SummaryService) {
		s.generator = gen
	}
}

// NewSummaryService creates a new summary service
func NewSummaryService(opts ...SummaryServiceOption) *SummaryService {
	s := &SummaryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizeRequest represents a request to summarize a document
type SummarizeRequest struct {
	Document string
}

// SummarizeResult is either an extraction or a single error message
type SummarizeResult struct {
	Extraction *models.ExtractionResult
	Error      string
}

// Failed reports whether the result carries an error message
func (r *SummarizeResult) Failed() bool {
	return r.Extraction == nil
}

// Payload returns the value to serialize for the caller
func (r *SummarizeResult) Payload() any {
	if r.Failed() {
		return models.ErrorResponse{Error: r.Error}
	}
	return r.Extraction
}

// Summarize prompts the model with the document and parses its reply.
// Failures are reported in the result and never returned as errors.
func (s *SummaryService) Summarize(ctx context.Context, req SummarizeRequest) (result *SummarizeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = summarizeFailure(fmt.Errorf("%v", r))
		}
	}()

	if s.generator == nil {
		return summarizeFailure(errors.New("text generation model not set"))
	}

	output, err := s.generator.Generate(ctx, BuildPrompt(req.Document))
	if err != nil {
		if errors.Is(err, generator.ErrUnexpectedResponse) {
			return &SummarizeResult{
				Error: fmt.Sprintf("Unexpected response format from %s.", s.generator.Name()),
			}
		}
		return summarizeFailure(err)
	}

	log.Printf("Raw AI output: %s", output)

	extraction := ParseSummaryText(output)
	return &SummarizeResult{Extraction: &extraction}
}

func summarizeFailure(err error) *SummarizeResult {
	log.Printf("Summarization failed: %v", err)
	return &SummarizeResult{
		Error: fmt.Sprintf("Error in summarize_document: %v", err),
	}
}
