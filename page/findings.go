package page

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Finding is a single validation message attached to a form field.
type Finding struct {
	Severity Severity `yaml:"severity" json:"severity"`
	Message  string   `yaml:"message" json:"message"`
	Field    string   `yaml:"field" json:"field"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s [%s]: %s", f.Severity, f.Field, f.Message)
}

// Findings are kept in the order checks were performed.
type Findings []Finding

func (fs *Findings) fatal(field, msg string) {
	*fs = append(*fs, Finding{Severity: SeverityFatal, Message: msg, Field: field})
}

func (fs *Findings) warn(field, msg string) {
	*fs = append(*fs, Finding{Severity: SeverityWarning, Message: msg, Field: field})
}

// HasFatal reports whether rendering must be refused (unless errors are
// ignored).
func (fs Findings) HasFatal() bool {
	for _, f := range fs {
		if f.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// ForField returns findings attached to the field.
func (fs Findings) ForField(field string) Findings {
	var res Findings
	for _, f := range fs {
		if f.Field == field {
			res = append(res, f)
		}
	}
	return res
}

// Err folds fatal findings into a single error, nil when there are none.
func (fs Findings) Err() error {
	var err error
	for _, f := range fs {
		if f.Severity != SeverityFatal {
			continue
		}
		err = multierr.Append(err, errors.New(f.Field+": "+f.Message))
	}
	return err
}
