package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sequence-backend/internal/models"
	"sequence-backend/internal/services"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:           "stats",
		Short:         "Summarize the collection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return withService(cmd, rootOpts, open, func(ctx context.Context, svc services.CollectionService) error {
				st := svc.Stats(ctx)
				return formatter.Success(st, func(w io.Writer) error {
					return writeStats(w, st)
				})
			})
		},
	}
}

// NewGenresCommand creates the genres command.
func NewGenresCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:           "genres",
		Short:         "List the distinct genres of the collection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return withService(cmd, rootOpts, open, func(ctx context.Context, svc services.CollectionService) error {
				genres := svc.Genres(ctx)
				return formatter.Success(genres, lines(genres))
			})
		},
	}
}

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:           "tags",
		Short:         "List the suggested tags",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return withService(cmd, rootOpts, open, func(ctx context.Context, svc services.CollectionService) error {
				tags := svc.SuggestedTags()
				return formatter.Success(tags, lines(tags))
			})
		},
	}
}

func lines(values []string) func(w io.Writer) error {
	return func(w io.Writer) error {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeStats(w io.Writer, st models.CollectionStats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total:      %d\n", st.Total)
	fmt.Fprintf(&b, "Watched:    %d\n", st.Watched)
	fmt.Fprintf(&b, "To watch:   %d\n", st.ToWatch)
	fmt.Fprintf(&b, "Avg rating: %.1f/20\n", st.AvgRating)
	fmt.Fprintf(&b, "Tiers:      excellent %d, good %d, average %d, poor %d\n",
		st.ByRatingTier.Excellent, st.ByRatingTier.Good, st.ByRatingTier.Average, st.ByRatingTier.Poor)

	if len(st.ByGenre) > 0 {
		b.WriteString("Genres:\n")
		for _, g := range st.ByGenre {
			fmt.Fprintf(&b, "  %-20s %d\n", g.Name, g.Count)
		}
	}
	if len(st.TopRated) > 0 {
		b.WriteString("Top rated:\n")
		for i, m := range st.TopRated {
			fmt.Fprintf(&b, "  %d. %s (%d/20)\n", i+1, m.Title, m.Rating)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
