package bulkimport_test

import (
	"testing"

	"go-payslip/internal/bulkimport"

	"github.com/stretchr/testify/assert"
)

var nameEmailMapping = []bulkimport.ColumnMapping{
	{Source: "Full Name", Target: "name"},
	{Source: "Email", Target: "email"},
}

func TestValidateRows(t *testing.T) {
	required := []string{"name", "email"}

	t.Run("missing fields bad email and repeats", func(t *testing.T) {
		rows := [][]string{
			{"Alice", "alice@x.com"},
			{"", "bob@x.com"},
			{"Carol", "not-an-email"},
			{"Alice Again", "ALICE@x.com"},
			{"Dan", ""},
		}

		got := bulkimport.ValidateRows(nameEmailMapping, rows, required)

		assert.Len(t, got, 5)
		assert.True(t, got[0].Valid)
		assert.Empty(t, got[0].Errors)
		assert.Equal(t, []string{"Missing required field: name"}, got[1].Errors)
		assert.Equal(t, []string{"Invalid email format"}, got[2].Errors)
		assert.Equal(t, []string{"Duplicate email in file"}, got[3].Errors)
		assert.Equal(t, []string{"Missing required field: email"}, got[4].Errors)
		for i, r := range got {
			assert.Equal(t, i+1, r.Number)
		}
	})

	t.Run("malformed emails are not tracked as seen", func(t *testing.T) {
		got := bulkimport.ValidateRows(nameEmailMapping, [][]string{
			{"A", "bad"},
			{"B", "bad"},
		}, required)

		assert.Equal(t, []string{"Invalid email format"}, got[0].Errors)
		assert.Equal(t, []string{"Invalid email format"}, got[1].Errors)
	})

	t.Run("reordering moves the duplicate flag", func(t *testing.T) {
		rows := [][]string{{"A", "same@x.com"}, {"B", "SAME@x.com"}}

		forward := bulkimport.ValidateRows(nameEmailMapping, rows, required)
		reversed := bulkimport.ValidateRows(nameEmailMapping, [][]string{rows[1], rows[0]}, required)

		assert.True(t, forward[0].Valid)
		assert.Equal(t, "B", forward[1].Values["name"])
		assert.Equal(t, []string{"Duplicate email in file"}, forward[1].Errors)
		assert.True(t, reversed[0].Valid)
		assert.Equal(t, "A", reversed[1].Values["name"])
		assert.Equal(t, []string{"Duplicate email in file"}, reversed[1].Errors)
	})

	t.Run("whitespace only is missing", func(t *testing.T) {
		got := bulkimport.ValidateRows(nameEmailMapping, [][]string{{"   ", "a@x.com"}}, required)
		assert.False(t, got[0].Valid)
		assert.Equal(t, []string{"Missing required field: name"}, got[0].Errors)
	})

	t.Run("short row fills empty values", func(t *testing.T) {
		got := bulkimport.ValidateRows(nameEmailMapping, [][]string{{"Alice"}}, required)

		assert.Equal(t, map[string]string{"name": "Alice", "email": ""}, got[0].Values)
		assert.Equal(t, []string{"Missing required field: email"}, got[0].Errors)
	})

	t.Run("skipped columns and last mapping wins", func(t *testing.T) {
		mapping := []bulkimport.ColumnMapping{
			{Source: "First", Target: "name"},
			{Source: "Salary", Target: ""},
			{Source: "Email", Target: "email"},
			{Source: "Nickname", Target: "name"},
		}

		got := bulkimport.ValidateRows(mapping, [][]string{{"Alice", "9000", "a@x.com", "Al"}}, required)

		assert.Equal(t, map[string]string{"name": "Al", "email": "a@x.com"}, got[0].Values)
		assert.True(t, got[0].Valid)
	})

	t.Run("valid iff no errors", func(t *testing.T) {
		got := bulkimport.ValidateRows(nameEmailMapping, [][]string{
			{"A", "a@x.com"}, {"", ""}, {"C", "c@x"}, {"D", "a@x.com"},
		}, required)

		for _, r := range got {
			assert.Equal(t, len(r.Errors) == 0, r.Valid)
		}
	})

	t.Run("no email column skips email checks", func(t *testing.T) {
		got := bulkimport.ValidateRows(
			[]bulkimport.ColumnMapping{{Source: "Name", Target: "name"}},
			[][]string{{"A"}, {"B"}},
			[]string{"name"},
		)

		assert.True(t, got[0].Valid)
		assert.True(t, got[1].Valid)
	})

	t.Run("independent calls do not share seen emails", func(t *testing.T) {
		rows := [][]string{{"A", "a@x.com"}}

		first := bulkimport.ValidateRows(nameEmailMapping, rows, required)
		second := bulkimport.ValidateRows(nameEmailMapping, rows, required)

		assert.True(t, first[0].Valid)
		assert.True(t, second[0].Valid)
	})
}

func TestPartition(t *testing.T) {
	rows := bulkimport.ValidateRows(nameEmailMapping, [][]string{
		{"A", "a@x.com"}, {"", "b@x.com"}, {"C", "c@x.com"},
	}, []string{"name", "email"})

	valid, invalid := bulkimport.Partition(rows)

	assert.Len(t, valid, 2)
	assert.Len(t, invalid, 1)
	assert.Equal(t, 1, valid[0].Number)
	assert.Equal(t, 3, valid[1].Number)
	assert.Equal(t, 2, invalid[0].Number)
}
