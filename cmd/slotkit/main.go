// Command slotkit inspects the prime sizing table, union cell widths and
// cell snapshots.
//
// Usage:
//
//	slotkit primes next 1000
//	slotkit primes grow 3 --steps 10
//	slotkit primes check
//	slotkit fastmod 12345 1103
//	slotkit widths --bytes 24
//	slotkit dict 5000 --out cells.snap --compression s2
//	slotkit inspect cells.snap
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
