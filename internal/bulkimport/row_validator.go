package bulkimport

import (
	"regexp"
	"strings"
)

const (
	emailField = "email"

	msgInvalidEmail   = "Invalid email format"
	msgDuplicateEmail = "Duplicate email in file"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ColumnMapping binds one source column to a target field. An empty Target
// means the column is skipped.
type ColumnMapping struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

func (m ColumnMapping) Skipped() bool { return m.Target == "" }

// MappingFromMatches turns matcher proposals into an editable mapping.
func MappingFromMatches(matches []ColumnMatch) []ColumnMapping {
	mapping := make([]ColumnMapping, len(matches))
	for i, m := range matches {
		mapping[i] = ColumnMapping{Source: m.Source}
		if m.Matched {
			mapping[i].Target = m.Target
		}
	}
	return mapping
}

type ParsedRow struct {
	Number int               `json:"row"`
	Values map[string]string `json:"values"`
	Errors []string          `json:"errors"`
	Valid  bool              `json:"valid"`
}

// seenEmails is threaded through one validation pass. Keys are lower-cased.
type seenEmails map[string]struct{}

// ValidateRows maps every data row through mapping and checks it against the
// required fields. A well formed email is also checked against the emails
// seen in earlier rows; the first occurrence stays valid. When two columns map to the same target,
// the later column wins.
func ValidateRows(mapping []ColumnMapping, rows [][]string, required []string) []ParsedRow {
	seen := make(seenEmails)

	out := make([]ParsedRow, 0, len(rows))
	for i, row := range rows {
		var parsed ParsedRow
		parsed, seen = validateRow(i+1, buildValues(mapping, row), required, seen)
		out = append(out, parsed)
	}
	return out
}

func buildValues(mapping []ColumnMapping, row []string) map[string]string {
	values := make(map[string]string, len(mapping))
	for i, m := range mapping {
		if m.Skipped() {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}
		values[m.Target] = value
	}
	return values
}

func validateRow(number int, values map[string]string, required []string, seen seenEmails) (ParsedRow, seenEmails) {
	errs := []string{}

	for _, field := range required {
		if strings.TrimSpace(values[field]) == "" {
			errs = append(errs, "Missing required field: "+field)
		}
	}

	if email := values[emailField]; strings.TrimSpace(email) != "" {
		key := strings.ToLower(email)
		switch _, dup := seen[key]; {
		case !emailPattern.MatchString(email):
			errs = append(errs, msgInvalidEmail)
		case dup:
			errs = append(errs, msgDuplicateEmail)
		default:
			seen[key] = struct{}{}
		}
	}

	return ParsedRow{
		Number: number,
		Values: values,
		Errors: errs,
		Valid:  len(errs) == 0,
	}, seen
}

// Partition splits rows by validity, keeping order.
func Partition(rows []ParsedRow) (valid, invalid []ParsedRow) {
	for _, r := range rows {
		if r.Valid {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}
	return valid, invalid
}
