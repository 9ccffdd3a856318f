package processor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/mike-pete/cms/internal/entities"
)

// parseChunk parses one chunk's CSV text (header plus data lines) under the
// column mapping. Row-level failures are collected, never aborting the
// chunk. A non-nil error means the chunk structure itself is unparseable and
// the whole job should fail so the queue redelivers.
func parseChunk(csvText string, mapping entities.ColumnMapping) ([]*entities.Contact, []entities.RowError, error) {
	headerLine, _, _ := strings.Cut(csvText, "\n")

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.Comma = sniffDelimiter(headerLine)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	headerRecord, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("error parse chunk header: %w", err)
	}
	columns := make(map[string]int, len(headerRecord))
	for i, name := range headerRecord {
		columns[normalizeHeader(name)] = i
	}

	var (
		contacts  []*entities.Contact
		rowErrors []entities.RowError
		rowIndex  = -1
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error parse chunk row: %w", err)
		}
		if isBlank(record) {
			continue
		}
		rowIndex++

		email, ok := fieldValue(record, columns, mapping.Email)
		if !ok || email == "" {
			rowErrors = append(rowErrors, entities.RowError{RowIndex: rowIndex, Reason: "missing email"})
			continue
		}
		normalized, err := normalizeEmail(email)
		if err != nil {
			rowErrors = append(rowErrors, entities.RowError{RowIndex: rowIndex, Reason: "invalid email format"})
			continue
		}

		contact := &entities.Contact{Email: normalized}
		if mapping.FirstName != "" {
			contact.FirstName, _ = fieldValue(record, columns, mapping.FirstName)
		}
		if mapping.LastName != "" {
			contact.LastName, _ = fieldValue(record, columns, mapping.LastName)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rowErrors, nil
}

// sniffDelimiter picks the delimiter occurring most often in the header
// line, defaulting to comma.
func sniffDelimiter(headerLine string) rune {
	delimiter := ','
	best := strings.Count(headerLine, ",")
	for _, candidate := range []rune{';', '\t'} {
		if n := strings.Count(headerLine, string(candidate)); n > best {
			best = n
			delimiter = candidate
		}
	}
	return delimiter
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func fieldValue(record []string, columns map[string]int, header string) (string, bool) {
	idx, ok := columns[normalizeHeader(header)]
	if !ok || idx >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[idx]), true
}

// normalizeEmail validates the address syntactically and lowercases it.
// Display names and anything but a bare address are rejected.
func normalizeEmail(value string) (string, error) {
	parsed, err := mail.ParseAddress(value)
	if err != nil {
		return "", err
	}
	if parsed.Address != value {
		return "", fmt.Errorf("not a bare email address: %q", value)
	}
	return strings.ToLower(parsed.Address), nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
