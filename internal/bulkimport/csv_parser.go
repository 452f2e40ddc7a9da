package bulkimport

import (
	"regexp"
	"strings"

	bulkimporterrors "go-payslip/internal/bulkimport/errors"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Grid is the parsed file: row 0 is the header, the rest are data rows.
type Grid [][]string

func (g Grid) Header() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

func (g Grid) DataRows() [][]string {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}

// ParseDelimited splits comma separated text into a grid of trimmed cells.
// Double quotes toggle a quoted span in which commas are literal; the quotes
// themselves are dropped. There is no escaped-quote form.
func ParseDelimited(text string) (Grid, error) {
	lines := lineBreak.Split(text, -1)

	grid := make(Grid, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		grid = append(grid, splitLine(line))
	}

	if len(grid) < 2 {
		return nil, bulkimporterrors.ErrNotEnoughRows
	}
	return grid, nil
}

func splitLine(line string) []string {
	var (
		cells    []string
		cell     strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}

	return append(cells, strings.TrimSpace(cell.String()))
}
