package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/brainz/internal/service"
)

// NewCoverArtCommand creates the coverart command.
func NewCoverArtCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coverart <release|release-group> <mbid>",
		Short: "List Cover Art Archive images",
		Long: `List the Cover Art Archive images of a release or release group.

The archive root is cover_art_url in the config file (default
https://coverartarchive.org/) or BRAINZ_COVER_ART_URL.

Example:
  brainz coverart release 91975b77-c9f2-46d1-a03b-f1fffbda1d1c`,
		Args:          cobra.ExactArgs(2),
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
			res, err := service.CoverArt[json.RawMessage](cmd.Context(), s.svc, entity, args[1])
			if errors.Is(err, service.ErrNoCoverArt) {
				_ = s.out.Error(ErrCodeConfig, err.Error(), nil)
				return WrapExitError(ExitCommandError, "cover art", err)
			}
			if err != nil {
				return s.rejected(err)
			}
			return s.reportRaw(res)
		},
	}
}
