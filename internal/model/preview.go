package model

// PreviewStatus describes what writing the document would change.
type PreviewStatus string

const (
	// StatusWouldCreate indicates the output file does not exist yet.
	StatusWouldCreate PreviewStatus = "would_create"
	// StatusWouldUpdate indicates the output file exists with other content.
	StatusWouldUpdate PreviewStatus = "would_update"
	// StatusUnchanged indicates the output file already holds the document.
	StatusUnchanged PreviewStatus = "unchanged"
)

// Preview is the read-only result of rendering a document without writing it.
type Preview struct {
	OutputPath string
	Status     PreviewStatus
	// Document is the rendered YAML.
	Document []byte
	// Diff is a unified diff from the current file to Document; empty when
	// unchanged.
	Diff string
}
