// Package cli implements sequencectl, a command line front end to the
// collection store.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"sequence-backend/internal/services"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	File    string // use a JSON file store instead of the configured one
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Opener returns a loaded collection service and a function releasing it.
type Opener func(ctx context.Context, opts *RootOptions) (services.CollectionService, func(), error)

// NewRootCommand creates the root command for sequencectl.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sequencectl",
		Short: "Sequence collection tool",
		Long:  "Inspect, export and import a Sequence movie collection.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "path of a JSON collection file (overrides STORE_BACKEND)")

	cmd.AddCommand(NewListCommand(opts, open))
	cmd.AddCommand(NewStatsCommand(opts, open))
	cmd.AddCommand(NewGenresCommand(opts, open))
	cmd.AddCommand(NewTagsCommand(opts, open))
	cmd.AddCommand(NewExportCommand(opts, open))
	cmd.AddCommand(NewImportCommand(opts, open))

	return cmd
}

// withService opens the collection for the duration of fn.
func withService(cmd *cobra.Command, opts *RootOptions, open Opener, fn func(context.Context, services.CollectionService) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, release, err := open(ctx, opts)
	if err != nil {
		return fmt.Errorf("open collection: %w", err)
	}
	defer release()

	return fn(ctx, svc)
}
