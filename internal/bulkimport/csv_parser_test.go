package bulkimport_test

import (
	"math/rand"
	"strings"
	"testing"

	"go-payslip/internal/bulkimport"
	bulkimporterrors "go-payslip/internal/bulkimport/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseDelimited(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		grid, err := bulkimport.ParseDelimited("name,email\nAlice,alice@x.com\nBob,bob@x.com")

		assert.NoError(t, err)
		assert.Equal(t, []string{"name", "email"}, grid.Header())
		assert.Equal(t, [][]string{{"Alice", "alice@x.com"}, {"Bob", "bob@x.com"}}, [][]string(grid.DataRows()))
	})

	t.Run("crlf and blank lines", func(t *testing.T) {
		grid, err := bulkimport.ParseDelimited("name,email\r\n\r\n  \nAlice,a@x.com\r\n\n")

		assert.NoError(t, err)
		assert.Len(t, grid, 2)
		assert.Equal(t, []string{"Alice", "a@x.com"}, grid[1])
	})

	t.Run("quoted comma stays in cell", func(t *testing.T) {
		grid, err := bulkimport.ParseDelimited("name,address\n\"Doe, Jane\",\"1 Main St, Springfield\"")

		assert.NoError(t, err)
		assert.Equal(t, []string{"Doe, Jane", "1 Main St, Springfield"}, grid[1])
	})

	t.Run("doubled quote is not an escape", func(t *testing.T) {
		grid, err := bulkimport.ParseDelimited("a,b\n\"x\"\"y\",z")

		assert.NoError(t, err)
		assert.Equal(t, []string{"xy", "z"}, grid[1])
	})

	t.Run("cells are trimmed", func(t *testing.T) {
		grid, err := bulkimport.ParseDelimited(" name , email \n  Alice  ,  a@x.com ")

		assert.NoError(t, err)
		assert.Equal(t, []string{"name", "email"}, grid[0])
		assert.Equal(t, []string{"Alice", "a@x.com"}, grid[1])
	})

	t.Run("ragged rows are kept as is", func(t *testing.T) {
		grid, err := bulkimport.ParseDelimited("a,b,c\n1\n1,2,3,4")

		assert.NoError(t, err)
		assert.Equal(t, []string{"1"}, grid[1])
		assert.Equal(t, []string{"1", "2", "3", "4"}, grid[2])
	})

	t.Run("header only is rejected", func(t *testing.T) {
		_, err := bulkimport.ParseDelimited("name,email\n\n")
		assert.ErrorIs(t, err, bulkimporterrors.ErrNotEnoughRows)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := bulkimport.ParseDelimited("")
		assert.ErrorIs(t, err, bulkimporterrors.ErrNotEnoughRows)
	})
}

func TestParseDelimited_RoundTrip(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz ABCDEFGHIJ0123456789.@-_"
	rng := rand.New(rand.NewSource(7))

	randomCell := func() string {
		var b strings.Builder
		n := 1 + rng.Intn(10)
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		cell := strings.TrimSpace(b.String())
		if cell == "" {
			return "x"
		}
		return cell
	}

	for iter := 0; iter < 200; iter++ {
		cols := 1 + rng.Intn(6)
		rows := 2 + rng.Intn(8)

		want := make([][]string, rows)
		lines := make([]string, rows)
		for r := range want {
			want[r] = make([]string, cols)
			for c := range want[r] {
				want[r][c] = randomCell()
			}
			lines[r] = strings.Join(want[r], ",")
		}

		sep := "\n"
		if iter%2 == 1 {
			sep = "\r\n"
		}
		grid, err := bulkimport.ParseDelimited(strings.Join(lines, sep))

		assert.NoError(t, err)
		assert.Equal(t, want, [][]string(grid))
	}
}
