package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

const issuesSeparator = "; "

type violation struct {
	Field   string
	Message string
}

// PayloadError holds all violations found in request payload
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	msgs := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, issuesSeparator)
}

// Violation appends violation for field
func (e *PayloadError) Violation(field, msg string) {
	e.violations = append(e.violations, violation{Field: field, Message: msg})
}

// FormViolation appends violation related to payload as a whole
func (e *PayloadError) FormViolation(msg string) {
	e.violations = append(e.violations, violation{Message: msg})
}

// HasViolations reports whether at least one violation was recorded
func (e *PayloadError) HasViolations() bool {
	return len(e.violations) > 0
}

// FormErrors lists messages of violations not bound to any field
func (e *PayloadError) FormErrors() []string {
	formErrs := make([]string, 0)
	for _, v := range e.violations {
		if v.Field == "" {
			formErrs = append(formErrs, v.Message)
		}
	}
	return formErrs
}

// FieldErrors groups violation messages by field name
func (e *PayloadError) FieldErrors() map[string][]string {
	fieldErrs := make(map[string][]string)
	for _, v := range e.violations {
		if v.Field != "" {
			fieldErrs[v.Field] = append(fieldErrs[v.Field], v.Message)
		}
	}
	return fieldErrs
}

// MarshalJSON renders joined issues as error and per-field breakdown as details
func (e *PayloadError) MarshalJSON() ([]byte, error) {
	type details struct {
		FormErrors  []string            `json:"formErrors"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}

	return json.Marshal(&struct {
		Error   string  `json:"error"`
		Details details `json:"details"`
	}{
		Error: e.Error(),
		Details: details{
			FormErrors:  e.FormErrors(),
			FieldErrors: e.FieldErrors(),
		},
	})
}

// EchoValidator is echo.Validator backed by go-playground validator
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds EchoValidator from provided validator and translator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// New builds EchoValidator with english messages which refers fields by their json names
func New() (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to find en translator")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register en translations - %w", err)
	}

	return Echo(v, trans), nil
}

// Validate validates struct and returns PayloadError if any rule is violated
func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0, len(ve))}
	for _, e := range ve {
		pldErr.Violation(e.Field(), e.Translate(v.translator))
	}
	return pldErr
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
