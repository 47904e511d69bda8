package diag

// Severity ranks a diagnostic. The tokenizer and parser never go
// above SevInfo; only validation reports SevError.
type Severity uint8

const (
	// SevInfo marks notes such as skipped bytes or raw-line fallback.
	SevInfo Severity = iota
	// SevWarning marks suspicious but acceptable input.
	SevWarning
	// SevError marks a validation failure.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
