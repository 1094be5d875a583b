package commands

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Args is the validated argument bundle handed to the environment
// materializer.
type Args struct {
	Python                   string   `flag:"python" validate:"required"`
	Location                 string   `flag:"location" validate:"required"`
	PythonVersion            string   `flag:"python-version" validate:"required"`
	PthFile                  string   `flag:"pth-file" validate:"required"`
	PthEntryPrefix           string   `flag:"pth-entry-prefix"`
	BuildWorkspaceDirectory  string   `flag:"build-workspace-directory"`
	AdditionalWorkspacePaths []string `flag:"additional-workspace-paths" validate:"omitempty,dive,required"`
	Platform                 string   `flag:"platform" validate:"omitempty,oneof=posix windows"`
	Verbose                  bool     `flag:"verbose"`
}

// Validate checks that required flags are present and enumerated flags hold
// known values. Cross-field rules, such as workspace paths needing a
// workspace directory, are left to the materializer.
func (a *Args) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		return fld.Name
	})

	if err := v.Struct(a); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors converts validator.ValidationErrors to
// flag-oriented messages.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatSingleValidationError(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

func formatSingleValidationError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
