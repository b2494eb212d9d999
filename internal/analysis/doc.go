// Package analysis bundles the document-understanding collaborators
// consumed by the document service: plain-text extraction from uploaded
// files (TXT, PDF, DOCX), keyword-based categorization, regex-driven
// metadata extraction, and TF-IDF extractive summarization.
//
// These are heuristic signals. The orchestrator treats them as externally
// supplied inputs: their numerical quality is not a correctness concern of
// the storage, encryption, or access-control paths.
package analysis
