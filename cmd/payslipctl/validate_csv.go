package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go-payslip/internal/bulkimport"
	"go-payslip/internal/person"

	"github.com/spf13/cobra"
)

type validateOptions struct {
	kind    string
	asJSON  bool
	targets []string
}

type validateReport struct {
	Kind    string                     `json:"kind"`
	Mapping []bulkimport.ColumnMapping `json:"mapping"`
	Valid   int                        `json:"valid"`
	Invalid []bulkimport.ParsedRow     `json:"invalid"`
}

func newValidateCSVCmd() *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate-csv <file.csv>",
		Short: "Map and validate a people import file without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateCSV(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "Import kind: employee, client or firm (required)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().StringArrayVar(&opts.targets, "map", nil, `Override a column target, "Column=field" ("Column=" skips it)`)
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func runValidateCSV(cmd *cobra.Command, path string, opts validateOptions) error {
	kind, ok := person.ParseKind(opts.kind)
	if !ok {
		return withCode(exitUsage, fmt.Errorf("invalid --kind %q", opts.kind))
	}
	fields, _ := person.FieldsFor(kind)
	schema := bulkimport.Schema{Required: fields.Required, Optional: fields.Optional}

	if err := bulkimport.CheckFileType(filepath.Base(path), ""); err != nil {
		return withCode(exitUsage, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return withCode(exitUsage, err)
	}

	grid, err := bulkimport.ParseDelimited(string(raw))
	if err != nil {
		return withCode(exitRejected, err)
	}

	mapping := bulkimport.MappingFromMatches(
		bulkimport.MatchFields(grid.Header(), schema.Required, schema.Optional),
	)
	if err := applyOverrides(mapping, opts.targets, schema); err != nil {
		return withCode(exitUsage, err)
	}

	valid, invalid := bulkimport.Partition(bulkimport.ValidateRows(mapping, grid.DataRows(), schema.Required))
	report := validateReport{
		Kind:    string(kind),
		Mapping: mapping,
		Valid:   len(valid),
		Invalid: invalid,
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(cmd, report)
	}

	if len(invalid) > 0 {
		return withCode(exitRejected, fmt.Errorf("%d of %d row(s) invalid", len(invalid), len(valid)+len(invalid)))
	}
	return nil
}

func applyOverrides(mapping []bulkimport.ColumnMapping, overrides []string, schema bulkimport.Schema) error {
	for _, o := range overrides {
		column, target, found := strings.Cut(o, "=")
		if !found {
			return fmt.Errorf("invalid --map %q, want Column=field", o)
		}
		target = strings.TrimSpace(target)
		if target != "" && !schema.Has(target) {
			return fmt.Errorf("unknown target field %q", target)
		}
		matched := false
		for i := range mapping {
			if mapping[i].Source == strings.TrimSpace(column) {
				mapping[i].Target = target
				matched = true
			}
		}
		if !matched {
			return fmt.Errorf("no column named %q", column)
		}
	}
	return nil
}

func printReport(cmd *cobra.Command, r validateReport) {
	out := cmd.OutOrStdout()

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tFIELD")
	for _, m := range r.Mapping {
		target := m.Target
		if m.Skipped() {
			target = "(skipped)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", m.Source, target)
	}
	_ = tw.Flush()

	fmt.Fprintf(out, "\n%d valid, %d invalid\n", r.Valid, len(r.Invalid))
	for _, row := range r.Invalid {
		fmt.Fprintf(out, "row %d: %s\n", row.Number, strings.Join(row.Errors, "; "))
	}
}
