package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/slotkit/format"
	"github.com/arloliu/slotkit/hashmap"
	"github.com/arloliu/slotkit/snapshot"
	"github.com/arloliu/slotkit/union"
)

type dictReport struct {
	Stats    hashmap.Stats `yaml:"stats"`
	Capacity int           `yaml:"capacity"`
	Output   string        `yaml:"output,omitempty"`
	Bytes    int           `yaml:"bytes,omitempty"`
}

// fillCells inserts n default-width cells keyed by their index; values hold
// the index and its square.
func fillCells(n int, opts ...hashmap.Option) (*snapshot.Cells[union.W16, union.W16], error) {
	d, err := hashmap.NewUnionKeyed[union.W16, union.Default](opts...)
	if err != nil {
		return nil, err
	}

	for i := range n {
		v := int64(i)
		d.Set(union.From[union.W16](v), union.From[union.W16]([2]int64{v, v * v}))
	}

	return d, nil
}

func newDictCmd(a *app) *cobra.Command {
	var (
		capacity    int
		output      string
		compression string
	)

	cmd := &cobra.Command{
		Use:   "dict <count>",
		Short: "Fill a cell dictionary with count entries, report its shape and optionally snapshot it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("count", args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("invalid count %d: must not be negative", n)
			}
			ct, err := format.ParseCompression(compression)
			if err != nil {
				return err
			}

			d, err := fillCells(n, hashmap.WithCapacity(capacity), hashmap.WithLogger(a.logger))
			if err != nil {
				return err
			}
			r := dictReport{Stats: d.Stats(), Capacity: d.Cap()}

			if output != "" {
				data, err := snapshot.Encode(d, snapshot.WithCompression(ct))
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				a.logger.Info("snapshot written", zap.String("path", output), zap.Int("bytes", len(data)))
				r.Output = output
				r.Bytes = len(data)
			}

			return writeYAML(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "initial capacity")
	cmd.Flags().StringVarP(&output, "out", "o", "", "write a snapshot to this file")
	cmd.Flags().StringVarP(&compression, "compression", "c", "zstd", "snapshot compression: none, zstd, s2 or lz4")

	return cmd
}
