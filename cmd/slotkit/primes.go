package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/slotkit/primes"
)

func newPrimesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Query the hash table sizing policy",
	}
	cmd.AddCommand(newPrimesNextCmd(), newPrimesGrowCmd(a), newPrimesCheckCmd(a))

	return cmd
}

func newPrimesNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <min>",
		Short: "Print the smallest table size of at least min",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minSize, err := parseIntArg("min", args[0])
			if err != nil {
				return err
			}

			size, err := primes.GetPrime(minSize)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), size)

			return nil
		},
	}
}

func newPrimesGrowCmd(a *app) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "grow <size>",
		Short: "Print the sizes a full table of size grows through",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseIntArg("size", args[0])
			if err != nil {
				return err
			}
			if size < 0 {
				return fmt.Errorf("invalid size %d: must not be negative", size)
			}

			for i := range steps {
				next := primes.ExpandPrime(size)
				a.logger.Debug("expanded", zap.Int("step", i+1), zap.Int("from", size), zap.Int("to", next))
				fmt.Fprintln(cmd.OutOrStdout(), next)
				if next == size {
					break
				}
				size = next
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of growth steps")

	return cmd
}

type tableReport struct {
	Entries             int      `yaml:"entries"`
	Smallest            int      `yaml:"smallest"`
	Largest             int      `yaml:"largest"`
	Ascending           bool     `yaml:"ascending"`
	AllPrime            bool     `yaml:"all_prime"`
	HashPrimeSafe       bool     `yaml:"hash_prime_safe"`
	MaxPrimeArrayLength int      `yaml:"max_prime_array_length"`
	MaxIsPrime          bool     `yaml:"max_is_prime"`
	Failures            []string `yaml:"failures,omitempty"`
}

func checkTable() tableReport {
	table := primes.Primes()
	r := tableReport{
		Entries:             len(table),
		Smallest:            table[0],
		Largest:             table[len(table)-1],
		Ascending:           slices.IsSorted(table),
		AllPrime:            true,
		HashPrimeSafe:       true,
		MaxPrimeArrayLength: primes.MaxPrimeArrayLength,
		MaxIsPrime:          primes.IsPrime(primes.MaxPrimeArrayLength),
	}

	for _, p := range table {
		if !primes.IsPrime(p) {
			r.AllPrime = false
			r.Failures = append(r.Failures, fmt.Sprintf("%d is not prime", p))
		}
		if (p-1)%primes.HashPrime == 0 {
			r.HashPrimeSafe = false
			r.Failures = append(r.Failures, fmt.Sprintf("%d - 1 is divisible by %d", p, primes.HashPrime))
		}
	}
	if !r.Ascending {
		r.Failures = append(r.Failures, "table is not ascending")
	}
	if !r.MaxIsPrime {
		r.Failures = append(r.Failures, "max prime array length is not prime")
	}

	return r
}

func newPrimesCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the prime table and print a YAML report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := checkTable()
			if err := writeYAML(cmd.OutOrStdout(), r); err != nil {
				return err
			}

			if len(r.Failures) > 0 {
				a.logger.Error("prime table check failed", zap.Strings("failures", r.Failures))
				return fmt.Errorf("prime table check failed with %d problems", len(r.Failures))
			}

			return nil
		},
	}
}
