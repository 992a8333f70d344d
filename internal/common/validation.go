package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ValidateStruct checks the `validate` tags of v. Failures wrap ErrInvalidArgument.
func ValidateStruct(op string, v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return NewLifecycleError(op, ErrInvalidArgument, "%v", err)
	}

	failed := make([]string, 0, len(ve))
	for _, fe := range ve {
		failed = append(failed, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return NewLifecycleError(op, ErrInvalidArgument, "invalid fields: %s", strings.Join(failed, ", "))
}
