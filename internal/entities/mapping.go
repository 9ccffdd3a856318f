package entities

import "strings"

// ColumnMapping binds logical contact fields to literal CSV header names.
// It is supplied once when processing starts and is immutable for the
// lifetime of that file's ingestion.
type ColumnMapping struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (m ColumnMapping) Validate() error {
	if strings.TrimSpace(m.Email) == "" {
		return ErrMappingEmailRequired
	}
	return nil
}
