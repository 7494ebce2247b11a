package diag

import "strings"

// Location points at the part of the document a diagnostic is about.
type Location struct {
	Anchor  string // id of the section anchor, without '#'
	Element string // short element label, e.g. "h4#texturesample" or "tr 3"
}

func (l Location) String() string {
	var sb strings.Builder
	if l.Anchor != "" {
		sb.WriteByte('#')
		sb.WriteString(l.Anchor)
	}
	if l.Element != "" {
		if sb.Len() > 0 {
			sb.WriteString(" > ")
		}
		sb.WriteString(l.Element)
	}
	if sb.Len() == 0 {
		return "<document>"
	}
	return sb.String()
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Location Location
}

func New(sev Severity, code Code, loc Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Location: loc,
		Message:  msg,
	}
}
