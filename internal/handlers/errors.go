package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse documents body of validation.PayloadError
type validationErrorResponse struct {
	Error   string `json:"error"`
	Details struct {
		FormErrors  []string            `json:"formErrors"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	} `json:"details"`
}

func internalError(msg string, err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, msg).SetInternal(err)
}

// HTTPErrorHandler writes every error as json body with error message.
// Details of internal errors are logged and never sent to client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var body any = &errorResponse{Error: http.StatusText(http.StatusInternalServerError)}

	var pldErr *validation.PayloadError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &pldErr):
		status = http.StatusBadRequest
		body = pldErr
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status < http.StatusInternalServerError || httpErr.Internal != nil {
			body = &errorResponse{Error: fmt.Sprint(httpErr.Message)}
		}
	}

	entry := logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request().Method,
		"uri":    c.Request().RequestURI,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}

	if writeErr != nil {
		logrus.WithError(writeErr).Error("failed to write error response")
	}
}
