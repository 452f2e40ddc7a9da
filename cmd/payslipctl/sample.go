package main

import (
	"os"

	"go-payslip/internal/payslip"

	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the sample payslip batch document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := payslip.SampleBatchJSON()
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}
