package errcollection

import (
	"strings"

	"github.com/pkg/errors"
)

const delimiter = ";\n "

// ErrorCollection gathers errors so they can be reported at once.
// The combined error message joins every message with a delimiter.
type ErrorCollection struct {
	errorList []error
}

// Add inserts new error to collection. Nil errors are ignored.
func (e *ErrorCollection) Add(err error) {
	if err == nil {
		return
	}
	e.errorList = append(e.errorList, err)
}

// Len returns number of collected errors.
func (e *ErrorCollection) Len() int {
	return len(e.errorList)
}

// GetErrIfAny returns error with combined message from all given errors.
// In case of no error it returns nil.
func (e *ErrorCollection) GetErrIfAny() error {
	if len(e.errorList) == 0 {
		return nil
	}

	messages := make([]string, 0, len(e.errorList))
	for _, err := range e.errorList {
		messages = append(messages, err.Error())
	}
	return errors.New(strings.Join(messages, delimiter))
}
