// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smart-events/board/internal/core/comment"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Submission is a trimmed comment form submission.
type Submission struct {
	Name    string `validate:"required"`
	Message string `validate:"required,max=500"`
}

// Trim returns a Submission with surrounding whitespace removed from both fields.
func Trim(rawName, rawMessage string) Submission {
	return Submission{
		Name:    strings.TrimSpace(rawName),
		Message: strings.TrimSpace(rawMessage),
	}
}

// Comment validates a trimmed submission. It returns a *comment.ValidationError
// listing every rejected field, or nil.
func Comment(s Submission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &comment.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, comment.FieldError{
			Field:  strings.ToLower(fe.Field()),
			Reason: reason(fe),
		})
	}
	return out
}

// Name validates an author name is non-empty after trimming whitespace.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Message validates a message is non-empty after trimming and within the
// length bound.
func Message(msg string) error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return fmt.Errorf("message is required")
	}
	if n := len([]rune(msg)); n > comment.MaxMessageLength {
		return fmt.Errorf("message is %d characters, limit is %d", n, comment.MaxMessageLength)
	}
	return nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
