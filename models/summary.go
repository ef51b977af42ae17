package models

// SummarizeRequest is the body of POST /summarize
type SummarizeRequest struct {
	Document string `json:"document"`
}

// StoredSummarizeRequest is the body of POST /summarize/stored
type StoredSummarizeRequest struct {
	Key string `json:"key"`
}

// ErrorResponse is the single-key error payload returned by every route
type ErrorResponse struct {
	Error string `json:"error"`
}
