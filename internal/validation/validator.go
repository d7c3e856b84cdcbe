// Package validation wraps go-playground/validator with the custom rules and
// Spanish field messages used by the game and review endpoints.
//
// Inputs declare their rules with `validate` tags and are checked with Struct:
//
//	type input struct {
//	    Title *string `json:"titulo" validate:"required,notblank,max=100"`
//	}
//
//	if err := validation.Struct(&in); err != nil {
//	    // err.Messages() holds one message per failing field
//	}
//
// Field names in errors are the JSON names of the fields.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"gametracker/backend/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var coverURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|webp|gif)(\?.*)?$`)

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Error is the set of field violations of a single input.
type Error struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the human-readable messages in field order.
func (e *Error) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return msgs
}

// NewError builds an Error from a single field message.
func NewError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Tag: "custom", Message: message}}}
}

// IsCoverURL reports whether url is the placeholder or an http(s) image URL.
func IsCoverURL(url string) bool {
	return url == models.PlaceholderCoverURL || coverURLPattern.MatchString(url)
}

// Get returns the shared validator instance with the custom rules registered.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		mustRegister("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		mustRegister("integer", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		})
		mustRegister("releaseyear", func(fl validator.FieldLevel) bool {
			return fl.Field().Int() <= int64(models.MaxReleaseYear())
		})
		mustRegister("coverurl", func(fl validator.FieldLevel) bool {
			return IsCoverURL(fl.Field().String())
		})
		mustRegister("genre", func(fl validator.FieldLevel) bool {
			return models.Genre(fl.Field().String()).Valid()
		})
		mustRegister("platform", func(fl validator.FieldLevel) bool {
			return models.Platform(fl.Field().String()).Valid()
		})
		mustRegister("difficulty", func(fl validator.FieldLevel) bool {
			return models.Difficulty(fl.Field().String()).Valid()
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates s and returns nil or an *Error.
func Struct(s any) *Error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewError("unknown", err.Error())
	}

	out := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: translate(fe),
		})
	}
	return out
}

func translate(fe validator.FieldError) string {
	tag := fe.Tag()
	if tag == "notblank" {
		tag = "required"
	}
	if byTag, ok := messages[fe.Field()]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return fmt.Sprintf("El campo %s no es válido (%s)", fe.Field(), fe.Tag())
}
