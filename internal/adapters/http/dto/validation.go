package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
// The first part is the field name, subsequent parts are options like "omitempty".
const jsonTagParts = 2

// Messages for request bodies that cannot be decoded at all.
const (
	MessageBodyNotObject = "request body must be a JSON object"
	MessageInvalidFields = "invalid quote request"
)

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance.
// It initializes the validator with custom validations on first call.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", validateNotEmpty)
	})

	return validate
}

// Validate validates a struct using the validator instance. Failures are
// returned as a *domain.ValidationError carrying one message per field.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	fields := ValidationErrors(err)
	if len(fields) == 0 {
		return fmt.Errorf("validating request: %w", err)
	}

	return domain.NewFieldsValidationError(MessageInvalidFields, fields)
}

// errNotObject marks a body that is not exactly one JSON object.
var errNotObject = errors.New("body is not a single JSON object")

// BindAndValidate decodes the JSON body into v and validates it.
// The body must hold exactly one JSON object and nothing after it. Decoding
// failures are reported as validation errors so the client gets a 400.
func BindAndValidate(c *gin.Context, v any) error {
	body, err := c.GetRawData()
	if err != nil {
		return bindingError(err)
	}

	if err := decodeObject(body, v); err != nil {
		return bindingError(err)
	}

	return Validate(v)
}

func decodeObject(body []byte, v any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return errNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errNotObject
	}

	return nil
}

// bindingError translates a JSON decoding failure into a domain validation error.
func bindingError(err error) error {
	var (
		maxBytesErr *http.MaxBytesError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", maxBytesErr.Limit))

	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationErrorWithValue(typeErr.Field, "must be a "+jsonKind(typeErr.Type), typeErr.Value)

	default:
		// empty body, malformed JSON, trailing data, or a JSON value that is not an object
		return domain.NewFieldsValidationError(MessageBodyNotObject, nil)
	}
}

// jsonKind names a Go type the way a JSON client would think of it.
func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// ValidationErrors extracts field-level error messages from a validator error.
// Returns a map of field names to error messages suitable for API responses.
func ValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = validationMessage(fieldErr)
		}
	}

	return fieldErrors
}

// validationMessages maps validation tags to message templates.
// Use {param} as placeholder for the validation parameter.
var validationMessages = map[string]string{
	"required": "this field is required",
	"notempty": "must not be empty",
	"oneof":    "must be one of: {param}",
}

// validationMessage returns a human-readable message for a validation error.
func validationMessage(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "min", "max":
		return minMaxMessage(tag, param, fe.Kind())
	case "required_without":
		return fe.Field() + " or " + strings.ToLower(param) + " is required"
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", param)
	}

	return "failed validation: " + tag
}

// minMaxMessage returns the appropriate message for min/max validation.
func minMaxMessage(tag, param string, kind reflect.Kind) string {
	suffix := ""
	if kind == reflect.String {
		suffix = " characters"
	}

	if tag == "min" {
		return "must be at least " + param + suffix
	}

	return "must be at most " + param + suffix
}

// validateNotEmpty validates that a string is not empty after trimming whitespace.
func validateNotEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
