package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sequence-backend/internal/derive"
	"sequence-backend/internal/models"
	"sequence-backend/internal/query"
	"sequence-backend/internal/services"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	params := query.Params{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies matching filters",
		Long: `List the collection filtered and sorted the same way as the web view.

Filters combine with AND. "all" disables a filter.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := query.ParseCriteria(params)
			if err != nil {
				return err
			}

			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return withService(cmd, rootOpts, open, func(ctx context.Context, svc services.CollectionService) error {
				movies := svc.List(ctx, criteria)
				formatter.VerboseLog("%d movies match", len(movies))
				return formatter.Success(movies, func(w io.Writer) error {
					return writeMovieTable(w, movies)
				})
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&params.Search, "search", "s", "", "match title, director, actors or review")
	flags.StringVar(&params.Rating, "rating", "all", "rating tier (all|excellent|good|average|poor)")
	flags.StringVar(&params.Version, "version", "all", "available version (all|VF|VO)")
	flags.StringVar(&params.Genre, "genre", "all", "genre token")
	flags.StringVar(&params.Watched, "watched", "all", "watched state (all|watched|toWatch)")
	flags.StringVar(&params.SortBy, "sort-by", string(query.SortDateWatched), "sort key (rating|title|year|duration|dateWatched|dateAdded)")
	flags.StringVar(&params.Order, "order", string(query.Desc), "sort order (asc|desc)")
	flags.StringVar(&params.Locale, "locale", "", "locale used to order titles")

	return cmd
}

func writeMovieTable(w io.Writer, movies []models.Movie) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tRATING\tYEAR\tDURATION\tGENRE\tWATCHED")
	for _, m := range movies {
		year := "-"
		if m.Year != nil {
			year = strconv.Itoa(*m.Year)
		}
		watched := "to watch"
		if m.Watched {
			watched = "N/A"
			if m.DateWatched != nil {
				watched = derive.FormatDateLong(*m.DateWatched)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%d/20\t%s\t%s\t%s\t%s\n",
			m.ID, m.Title, m.Rating, year, derive.FormatDuration(m.Duration), m.Genre, watched)
	}
	return tw.Flush()
}
