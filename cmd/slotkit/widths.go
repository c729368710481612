package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/slotkit/union"
)

func newWidthsCmd() *cobra.Command {
	var byteCount int

	cmd := &cobra.Command{
		Use:   "widths",
		Short: "List supported union cell widths, or validate one with --bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("bytes") {
				if err := union.ValidateByteCount(byteCount); err != nil {
					return err
				}
				fmt.Fprintf(out, "%d bytes: %d longs, %d ints\n",
					byteCount, byteCount/union.SizeOfLong, byteCount/4)

				return nil
			}

			counts := union.ByteCounts()
			parts := make([]string, len(counts))
			for i, n := range counts {
				parts[i] = fmt.Sprint(n)
			}
			fmt.Fprintf(out, "%d widths from %d to %d bytes (default %d):\n%s\n",
				len(counts), union.MinByteCount, union.MaxByteCount, union.DefaultByteCount,
				strings.Join(parts, " "))

			return nil
		},
	}
	cmd.Flags().IntVarP(&byteCount, "bytes", "b", union.DefaultByteCount, "byte count to validate")

	return cmd
}
