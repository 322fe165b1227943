package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sequence-backend/internal/models"
	"sequence-backend/internal/services"
)

// ExportResult describes a written export file.
type ExportResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the collection to sequence_export_<date>.json",
		Long: `Write the whole collection as an indented JSON array.

The file is named after today's date and placed in --dir. An empty
collection is not exported.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return withService(cmd, rootOpts, open, func(ctx context.Context, svc services.CollectionService) error {
				data, err := svc.ExportSnapshot(ctx)
				if err != nil {
					return err
				}

				path := filepath.Join(dir, svc.ExportFilename())
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}

				result := ExportResult{Path: path, Count: svc.Stats(ctx).Total}
				return formatter.Success(result, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "Exported %d movies to %s\n", result.Count, result.Path)
					return err
				})
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the export to")

	return cmd
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection with an exported file",
		Long: `Replace the whole collection with the records of an export file.

Without --yes nothing is changed and the number of records that would
be imported is printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return withService(cmd, rootOpts, open, func(ctx context.Context, svc services.CollectionService) error {
				preview, err := svc.Import(ctx, raw, yes)
				if err != nil {
					return err
				}
				return formatter.Success(preview, func(w io.Writer) error {
					return writeImportPreview(w, preview)
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply the import")

	return cmd
}

func writeImportPreview(w io.Writer, preview *models.ImportPreview) error {
	if preview.Applied {
		_, err := fmt.Fprintf(w, "Imported %d movies\n", preview.Count)
		return err
	}
	_, err := fmt.Fprintf(w, "Importing will replace the collection with %d movies. Rerun with --yes to apply.\n", preview.Count)
	return err
}
