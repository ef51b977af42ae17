package service

import "fmt"

const summaryPromptTemplate = `You are a highly experienced legal expert specializing in Indian law. Your task is to analyze and summarize the given legal document with accuracy and clarity, ensuring compliance with the Indian Legal System.

Document: %s

Provide the summary in the following format:

- Document Type: [Type of document]
- Key Provisions: [Key provisions of the document]
- Court’s Decision: [Summary of the court’s decision]
- Legal Implications: [Legal implications of the decision]
- Simplified Summary: [Simplified summary of the document]

Ensure the response is clear and well-structured.
`

// BuildPrompt embeds the document verbatim into the summarization prompt
func BuildPrompt(document string) string {
	return fmt.Sprintf(summaryPromptTemplate, document)
}
