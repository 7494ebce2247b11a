package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo marks content that was skipped as expected degradation.
	SevInfo Severity = iota
	// SevWarning marks content that looks wrong but was tolerated.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
