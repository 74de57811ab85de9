package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/search"
)

// searchFlags are shared by query and search.
type searchFlags struct {
	fields   []string
	missing  []string
	match    string
	includes []string
	statuses []string
	types    []string
	limit    int
	offset   int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.fields, "field", "f", nil, `field term as name=value (repeatable); "a b" is a phrase, x* a prefix, *x a suffix, x~ fuzzy`)
	cmd.Flags().StringArrayVar(&f.missing, "missing", nil, "field that must be absent (repeatable)")
	cmd.Flags().StringVar(&f.match, "match", "all", "combine fields with all (AND) or any (OR)")
	cmd.Flags().StringSliceVar(&f.includes, "inc", nil, "includes")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "release statuses")
	cmd.Flags().StringSliceVar(&f.types, "type", nil, "release types")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum results")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "results to skip")
}

// finalize builds and finalizes a search for entity from the flags.
func (f *searchFlags) finalize(cmd *cobra.Command, s *session, entity brainz.Entity) (querymap.Map, error) {
	b, err := search.NewDynamic(entity, s.tables)
	if err != nil {
		return querymap.Map{}, err
	}

	terms := make([]fieldTerm, 0, len(f.fields))
	for _, raw := range f.fields {
		ft, err := parseFieldTerm(raw)
		if err != nil {
			return querymap.Map{}, err
		}
		terms = append(terms, ft)
	}

	add := func(g *search.Group[string]) {
		for _, ft := range terms {
			ft.addTo(g)
		}
		for _, name := range f.missing {
			g.Missing(name)
		}
	}
	switch f.match {
	case "all":
		add(&b.Group)
	case "any":
		if len(terms)+len(f.missing) < 2 {
			add(&b.Group)
		} else {
			b.Or(add)
		}
	default:
		return querymap.Map{}, fmt.Errorf("invalid --match %q: must be all or any", f.match)
	}

	b.Include(toIncludes(f.includes)...)
	b.Status(toStatuses(f.statuses)...)
	b.Type(toTypes(f.types)...)

	var limit, offset *int
	if cmd.Flags().Changed("limit") {
		limit = &f.limit
	}
	if cmd.Flags().Changed("offset") {
		offset = &f.offset
	}
	return b.Finalize(querymap.Paging(limit, offset)...)
}

// fieldTerm is one parsed --field value.
type fieldTerm struct {
	name string
	text string
	kind string // literal, phrase, prefix, suffix, fuzzy
}

func parseFieldTerm(raw string) (fieldTerm, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fieldTerm{}, fmt.Errorf("invalid --field %q: want name=value", raw)
	}
	value = strings.TrimSpace(value)

	switch {
	case len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`):
		return fieldTerm{name: name, text: value[1 : len(value)-1], kind: "phrase"}, nil
	case strings.ContainsAny(value, " \t"):
		return fieldTerm{name: name, text: value, kind: "phrase"}, nil
	case len(value) > 1 && strings.HasSuffix(value, "*"):
		return fieldTerm{name: name, text: strings.TrimSuffix(value, "*"), kind: "prefix"}, nil
	case len(value) > 1 && strings.HasPrefix(value, "*"):
		return fieldTerm{name: name, text: strings.TrimPrefix(value, "*"), kind: "suffix"}, nil
	case len(value) > 1 && strings.HasSuffix(value, "~"):
		return fieldTerm{name: name, text: strings.TrimSuffix(value, "~"), kind: "fuzzy"}, nil
	default:
		return fieldTerm{name: name, text: value, kind: "literal"}, nil
	}
}

func (ft fieldTerm) addTo(g *search.Group[string]) {
	switch ft.kind {
	case "phrase":
		g.Phrase(ft.name, ft.text)
	case "prefix":
		g.Prefix(ft.name, ft.text)
	case "suffix":
		g.Suffix(ft.name, ft.text)
	case "fuzzy":
		g.Fuzzy(ft.name, ft.text)
	default:
		g.Term(ft.name, ft.text)
	}
}

func toIncludes(vals []string) []brainz.Include {
	out := make([]brainz.Include, len(vals))
	for i, v := range vals {
		out[i] = brainz.Include(strings.TrimSpace(v))
	}
	return out
}

func toStatuses(vals []string) []brainz.ReleaseStatus {
	out := make([]brainz.ReleaseStatus, len(vals))
	for i, v := range vals {
		out[i] = brainz.ReleaseStatus(strings.TrimSpace(v))
	}
	return out
}

func toTypes(vals []string) []brainz.ReleaseType {
	out := make([]brainz.ReleaseType, len(vals))
	for i, v := range vals {
		out[i] = brainz.ReleaseType(strings.TrimSpace(v))
	}
	return out
}

func parseEntityArg(s *session, arg string) (brainz.Entity, error) {
	entity, err := brainz.ParseEntity(arg)
	if err != nil {
		_ = s.out.Error(ErrCodeUsage, err.Error(), nil)
		return "", WrapExitError(ExitCommandError, "invalid entity", err)
	}
	return entity, nil
}

// renderedQuery is the output of the query command.
type renderedQuery struct {
	Entity string    `json:"entity"`
	Query  string    `json:"query"`
	Params []kvParam `json:"params"`
	Encode string    `json:"encoded"`
}

type kvParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func newRenderedQuery(entity brainz.Entity, m querymap.Map) renderedQuery {
	q, _ := m.Get(querymap.KeyQuery)
	params := make([]kvParam, 0, m.Len())
	for _, p := range m.Params() {
		params = append(params, kvParam{Key: p.Key, Value: p.Value})
	}
	return renderedQuery{Entity: string(entity), Query: q, Params: params, Encode: m.Encode()}
}

func (r renderedQuery) Text() string {
	var b strings.Builder
	b.WriteString(r.Query)
	for _, p := range r.Params {
		if p.Key == querymap.KeyQuery {
			continue
		}
		fmt.Fprintf(&b, "\n%s=%s", p.Key, p.Value)
	}
	return b.String()
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "query <entity>",
		Short: "Render a search query without sending it",
		Long: `Render and validate a search query locally.

Example:
  brainz query release -f artist="David Bowie" -f release="The Man Who Sold the World"`,
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
			m, err := flags.finalize(cmd, s, entity)
			if err != nil {
				return s.rejected(err)
			}
			return s.out.Success(newRenderedQuery(entity, m))
		},
	}
	flags.register(cmd)

	return cmd
}
