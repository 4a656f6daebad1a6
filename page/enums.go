package page

// Severity of a validation finding.
// ENUM(fatal, warning)
type Severity int

// Progress of a single generate action.
// ENUM(idle, parsed, validated, rendered, rejected)
type State int

// Content warning shown on top of a song page.
// ENUM(noWarnings, questionable, explicit)
type CWState int

// macro returns content warning template name, empty when no warning is
// requested.
func (c CWState) macro() string {
	switch c {
	case CWStateQuestionable:
		return "Questionable"
	case CWStateExplicit:
		return "Explicit"
	default:
		return ""
	}
}
