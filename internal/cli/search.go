package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/service"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <entity>",
		Short: "Run a full-text search",
		Long: `Run a full-text search and print the response body.

The query is validated locally first; a rejected query is never sent.

Example:
  brainz search recording -f recording="Her Majesty" -f artist="The Beatles" --limit 5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			entity, err := parseEntityArg(s, args[0])
			if err != nil {
				return err
			}
			res, err := service.Search[json.RawMessage](cmd.Context(), s.svc, entity, func() (querymap.Map, error) {
				return flags.finalize(cmd, s, entity)
			})
			if err != nil {
				return s.rejected(err)
			}
			return s.reportRaw(res)
		},
	}
	flags.register(cmd)

	return cmd
}
