package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-directory/internal/validation"
)

const notObjectMsg = "request body must be a JSON object"

// customerFields keeps json names of customer descriptive fields in report order
var customerFields = []string{"name", "phone", "address", "home", "road", "block", "town"}

// bind decodes request into i, payloads of wrong shape are reported as validation errors
func bind(c echo.Context, i any) error {
	err := c.Bind(i)
	if err == nil {
		return nil
	}

	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return pldErr
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	if httpErr.Code == http.StatusUnsupportedMediaType {
		pldErr = &validation.PayloadError{}
		pldErr.FormViolation(notObjectMsg)
		return pldErr
	}

	if errors.As(httpErr.Internal, &pldErr) {
		return pldErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(httpErr.Internal, &typeErr) {
		pldErr = &validation.PayloadError{}
		if typeErr.Field == "" {
			pldErr.FormViolation(notObjectMsg)
		} else {
			pldErr.Violation(typeErr.Field, fmt.Sprintf("%s must be %s", typeErr.Field, jsonKind(typeErr.Type)))
		}
		return pldErr
	}

	return err
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return jsonKind(t.Elem())
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a valid value"
	}
}

// UnmarshalJSON rejects explicit nulls, a field is either omitted or holds a string
func (uc *updateCustomer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pldErr := &validation.PayloadError{}
	for _, field := range customerFields {
		if v, ok := raw[field]; ok && string(v) == "null" {
			pldErr.Violation(field, fmt.Sprintf("%s must be a string", field))
		}
	}

	if pldErr.HasViolations() {
		return pldErr
	}

	type plain updateCustomer
	return json.Unmarshal(data, (*plain)(uc))
}
