package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-payslip/internal/payslip"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	out    string
	pdfDir string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <batch.json>",
		Short: "Validate a payslip batch and generate every payslip",
		Long: "Reads a JSON batch, checks it and prints the generated payslips as JSON.\n" +
			"Nothing is generated when the batch has missing or invalid fields; every problem is listed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write payslips JSON to this file instead of stdout")
	cmd.Flags().StringVar(&opts.pdfDir, "pdf-dir", "", "Also render one PDF per payslip into this directory")
	return cmd
}

func runGenerate(cmd *cobra.Command, path string, opts generateOptions) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return withCode(exitUsage, err)
	}

	doc, err := payslip.ParseBatch(raw)
	if err != nil {
		return withCode(exitRejected, fmt.Errorf("%s: %w", path, err))
	}

	result := payslip.NewGenerator().GenerateBatch(doc)
	if !result.OK() {
		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
		return withCode(exitRejected, fmt.Errorf("%s: %d problem(s) found, no payslips generated", path, len(result.Errors)))
	}

	data, err := json.MarshalIndent(result.Payslips, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if opts.out == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	} else if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return err
	}

	if opts.pdfDir != "" {
		if err := writePDFs(opts.pdfDir, result.Payslips); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "generated %d payslip(s)\n", len(result.Payslips))
	return nil
}

func writePDFs(dir string, payslips []payslip.Payslip) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var errs []error
	for _, p := range payslips {
		content, err := payslip.RenderPDF(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.PayslipNumber, err))
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, p.PayslipNumber+".pdf"), content, 0o644); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
