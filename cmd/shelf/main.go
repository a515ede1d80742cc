// Command shelf searches and extends a flat-file book catalog.
//
// Usage:
//
//	shelf <catalog.txt> <operation>
//
// The operation's shape selects the behaviour: a 13-digit number
// searches by ISBN, a Title:Author:ISBN:Copies line adds a record, and
// anything else searches titles by substring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/shelf"
)

var (
	jsonOut   bool
	syncWrite bool
	snapshots bool
	hashAlg   int
)

var rootCmd = &cobra.Command{
	Use:   "shelf <catalog.txt> <operation>",
	Short: "Search or extend a flat-file book catalog",
	Long: `shelf maintains a plain-text catalog of book records, one
Title:Author:ISBN:Copies line per record. It searches by 13-digit ISBN
or by title substring, and appends validated records. Rejected inputs
are appended to an errors.log audit file next to the catalog.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			err := fmt.Errorf("%w: need a catalog file and an operation", shelf.ErrInsufficientArguments)
			(&shelf.Audit{}).Record("<startup>", err)
			return err
		}
		return nil
	},
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	report, err := shelf.Run(args[0], args[1], shelf.Config{
		HashAlgorithm: hashAlg,
		SyncWrites:    syncWrite,
		Snapshots:     snapshots,
	})
	if err != nil {
		return err
	}

	if report.Rejected != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", report.Rejected)
	}

	if jsonOut {
		return report.WriteJSON(os.Stdout)
	}
	report.Write(os.Stdout)
	return nil
}

func main() {
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	rootCmd.Flags().BoolVar(&syncWrite, "sync", false, "fsync the rewritten catalog before renaming it into place")
	rootCmd.Flags().BoolVar(&snapshots, "snapshots", true, "keep a compressed copy of the previous catalog on every add")
	rootCmd.Flags().IntVar(&hashAlg, "hash", shelf.AlgXXHash3, "checksum algorithm for the .sum sidecar (1=xxh3, 2=fnv1a, 3=blake2b)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
