package intersect

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// CombinedError collects the errors of a multi-step operation such as
// closing every collection of an Index.
type CombinedError struct {
	Message string
	Errors  []error
}

func (c *CombinedError) append(err error) {
	c.Errors = append(c.Errors, err)
}

func (c *CombinedError) appendIfError(err error) {
	if err != nil {
		c.append(err)
	}
}

// ErrorOrNil returns nil when nothing was collected.
func (c *CombinedError) ErrorOrNil() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c
}

func (c CombinedError) Error() string {
	var result []string
	for _, err := range c.Errors {
		result = append(result, err.Error())
	}
	return fmt.Sprintf("%s: %s", c.Message, strings.Join(result, ", "))
}

func (c CombinedError) Unwrap() []error {
	return c.Errors
}
