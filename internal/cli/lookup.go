package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/lookup"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/result"
	"github.com/roach88/brainz/internal/rules"
	"github.com/roach88/brainz/internal/service"
)

// DefaultLookupConcurrency bounds the calls in flight for one command.
const DefaultLookupConcurrency = 4

type lookupFlags struct {
	includes    []string
	statuses    []string
	types       []string
	concurrency int
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &lookupFlags{}

	cmd := &cobra.Command{
		Use:   "lookup <entity> <mbid>...",
		Short: "Fetch entities by MBID",
		Long: `Fetch one or more entities by MBID.

Several MBIDs are fetched concurrently, at most --concurrency at a time,
and printed in the order given. Each request is validated before it is sent.

Example:
  brainz lookup release-group 938cef50-de9a-3ced-a1fe-bdfbd3bc4315 --inc releases --status official`,
		Args:          cobra.MinimumNArgs(2),
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
			return runLookup(cmd, s, flags, entity, args[1:])
		},
	}

	cmd.Flags().StringSliceVar(&flags.includes, "inc", nil, "includes")
	cmd.Flags().StringSliceVar(&flags.statuses, "status", nil, "release statuses")
	cmd.Flags().StringSliceVar(&flags.types, "type", nil, "release types")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", DefaultLookupConcurrency, "maximum concurrent requests")

	return cmd
}

// lookupOutcome is the result for one MBID.
type lookupOutcome struct {
	MBID  string    `json:"mbid"`
	Data  rawBody   `json:"data,omitempty"`
	Error *CLIError `json:"error,omitempty"`
}

type lookupOutcomes []lookupOutcome

func (o lookupOutcomes) Text() string {
	var b strings.Builder
	for i, item := range o {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n", item.MBID)
		if item.Error != nil {
			fmt.Fprintf(&b, "Error [%s]: %s", item.Error.Code, item.Error.Message)
			continue
		}
		b.WriteString(item.Data.Text())
	}
	return b.String()
}

func runLookup(cmd *cobra.Command, s *session, flags *lookupFlags, entity brainz.Entity, mbids []string) error {
	if flags.concurrency < 1 {
		_ = s.out.Error(ErrCodeUsage, "--concurrency must be at least 1", nil)
		return NewExitError(ExitCommandError, "invalid --concurrency")
	}
	mods := brainz.Modifiers{}
	mods.AddIncludes(toIncludes(flags.includes)...)
	mods.AddStatuses(toStatuses(flags.statuses)...)
	mods.AddTypes(toTypes(flags.types)...)

	outcomes := make(lookupOutcomes, len(mbids))
	var g errgroup.Group
	g.SetLimit(flags.concurrency)
	for i, id := range mbids {
		g.Go(func() error {
			outcomes[i] = fetchOne(cmd, s, entity, id, mods)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Error != nil {
			failed++
		}
	}

	if len(outcomes) == 1 {
		o := outcomes[0]
		if o.Error != nil {
			_ = s.out.Error(o.Error.Code, o.Error.Message, o.Error.Details)
			return NewExitError(ExitFailure, o.Error.Message)
		}
		return s.out.Success(o.Data)
	}

	if err := s.out.Success(outcomes); err != nil {
		return err
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d lookups failed", failed, len(outcomes)))
	}
	return nil
}

func fetchOne(cmd *cobra.Command, s *session, entity brainz.Entity, id string, mods brainz.Modifiers) lookupOutcome {
	out := lookupOutcome{MBID: id}

	path, build, err := newLookup(s.tables, entity, id, mods.Clone())
	if err != nil {
		out.Error = validationError(err)
		return out
	}
	res, err := service.Lookup[json.RawMessage](cmd.Context(), s.svc, entity, path, build)
	if err != nil {
		out.Error = validationError(err)
		return out
	}
	if f := describe(res); f != nil {
		out.Error = &CLIError{Code: f.Code, Message: f.Message}
		if f.Details != nil {
			out.Error.Details = f.Details
		}
		return out
	}
	body, _ := result.Value(res)
	out.Data = rawBody(body)
	return out
}

func validationError(err error) *CLIError {
	code := rules.ValidationCode(err)
	if code == "" {
		code = ErrCodeUsage
	}
	return &CLIError{Code: code, Message: err.Error()}
}

// newLookup builds the typed lookup request for entity and returns its
// path and finalizer.
func newLookup(tables *rules.Tables, entity brainz.Entity, id string, mods brainz.Modifiers) (string, func() (querymap.Map, error), error) {
	switch entity {
	case brainz.EntityArtist:
		r := withModifiers(lookup.Artist(tables, brainz.ArtistMbid(id)), mods)
		return r.Path(), r.Finalize, nil
	case brainz.EntityRelease:
		r := withModifiers(lookup.Release(tables, brainz.ReleaseMbid(id)), mods)
		return r.Path(), r.Finalize, nil
	case brainz.EntityReleaseGroup:
		r := withModifiers(lookup.ReleaseGroup(tables, brainz.ReleaseGroupMbid(id)), mods)
		return r.Path(), r.Finalize, nil
	case brainz.EntityLabel:
		r := withModifiers(lookup.Label(tables, brainz.LabelMbid(id)), mods)
		return r.Path(), r.Finalize, nil
	case brainz.EntityRecording:
		r := withModifiers(lookup.Recording(tables, brainz.RecordingMbid(id)), mods)
		return r.Path(), r.Finalize, nil
	case brainz.EntityWork:
		r := withModifiers(lookup.Work(tables, brainz.WorkMbid(id)), mods)
		return r.Path(), r.Finalize, nil
	case brainz.EntityEvent:
		if len(mods.Statuses) > 0 || len(mods.Types) > 0 {
			return "", nil, fmt.Errorf("event lookups accept --inc only")
		}
		r := lookup.Event(tables, brainz.EventMbid(id)).Include(mods.Includes...)
		return r.Path(), r.Finalize, nil
	default:
		return "", nil, fmt.Errorf("lookup of %s is not supported", entity)
	}
}

func withModifiers[M brainz.Mbid](r *lookup.Request[M], mods brainz.Modifiers) *lookup.Request[M] {
	return r.Include(mods.Includes...).Status(mods.Statuses...).Type(mods.Types...)
}
