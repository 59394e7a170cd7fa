// Package validation holds the declarative schema for business-intake
// records. The same rules the form applies client-side are enforced here
// again, so a bypassed client cannot push malformed rows into the sheet.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pamatshop4/blacklight-backend/internal/app/model"
)

// FieldErrors maps a field path (nested list paths included, e.g.
// "additional_locations[2].zip_code") to the messages for that field.
type FieldErrors map[string][]string

// Add appends a message for the given field path.
func (fe FieldErrors) Add(path, message string) {
	fe[path] = append(fe[path], message)
}

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths by JSON name so errors line up with the form.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "usphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "uszip", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return model.ValidCategory(fl.Field().String())
	})
	mustRegister(v, "accessmode", func(fl validator.FieldLevel) bool {
		return model.ValidAccessMode(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// ValidateRecord checks a candidate record against the full schema, field
// rules first, then the cross-field rules. Returns nil when the record is
// submittable.
func ValidateRecord(record *model.BusinessIntakeRecord) FieldErrors {
	fieldErrors := FieldErrors{}

	if err := validate.Struct(record); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				fieldErrors.Add(fieldPath(fe), messageFor(fe))
			}
		} else {
			fieldErrors.Add("", "invalid record")
		}
	}

	// At least one ownership checkbox; the error belongs to the first one.
	if !record.AfricanAmerican && !record.WomenOwned {
		fieldErrors.Add("African_American", "Select at least one ownership option")
	}

	// Multi-location businesses must list at least one extra location.
	if record.HasMultipleLocations && len(record.AdditionalLocations) == 0 {
		fieldErrors.Add("additional_locations", "Add at least one additional location")
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ValidateExtras checks the submission fields that sit outside the record
// shape the form validates: the split tag list and the derived Not_USA flag.
func ValidateExtras(tags []string, notUSA *int) FieldErrors {
	fieldErrors := FieldErrors{}

	if notUSA == nil || (*notUSA != 0 && *notUSA != 1) {
		fieldErrors.Add("Not_USA", "Must be 0 or 1")
	}
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			fieldErrors.Add(fmt.Sprintf("tags[%d]", i), "Tags must not be blank")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// fieldPath strips the root struct name off the validator namespace, leaving
// paths like "phone" or "additional_locations[2].zip_code".
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Add at most %s entries", fe.Param())
		}
		return fmt.Sprintf("Must be %s characters or fewer", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Add at least %s entry", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "usphone":
		return "Phone number must be exactly 10 digits"
	case "uszip":
		return "Must be a valid ZIP code (12345 or 12345-6789)"
	case "category":
		return "Select a category from the list"
	case "accessmode":
		return "Must be one of physical, online or both"
	case "eq":
		return "Consent is required to submit"
	default:
		return "Invalid value"
	}
}
