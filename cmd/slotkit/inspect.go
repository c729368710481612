package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/slotkit/snapshot"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Validate a cell snapshot and print its header as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			a.logger.Debug("read snapshot", zap.String("path", args[0]), zap.Int("bytes", len(data)))

			info, err := snapshot.Describe(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			return writeYAML(cmd.OutOrStdout(), info)
		},
	}
}
