package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/slotkit/primes"
)

func newFastModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fastmod <value> <divisor>",
		Short: "Compute value mod divisor with the multiply-shift method",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseUint32Arg("value", args[0])
			if err != nil {
				return err
			}
			divisor, err := parseUint32Arg("divisor", args[1])
			if err != nil {
				return err
			}
			if divisor == 0 {
				return errors.New("divisor must not be zero")
			}

			multiplier := primes.FastModMultiplier(divisor)
			fmt.Fprintf(cmd.OutOrStdout(), "multiplier: 0x%016x\nresult: %d\n",
				multiplier, primes.FastMod(value, divisor, multiplier))

			return nil
		},
	}
}
