package errors

import (
	"errors"
	"fmt"
)

// EntryNotFoundErr means requested entry is missing in data source
type EntryNotFoundErr struct {
	entity string
	id     string
}

func (e *EntryNotFoundErr) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.entity, e.id)
}

// NewEntryNotFoundErr builds new EntryNotFoundErr
func NewEntryNotFoundErr(entity, id string) *EntryNotFoundErr {
	return &EntryNotFoundErr{entity: entity, id: id}
}

// IsEntryNotFound reports whether err or any error it wraps is EntryNotFoundErr
func IsEntryNotFound(err error) bool {
	var nfErr *EntryNotFoundErr
	return errors.As(err, &nfErr)
}
