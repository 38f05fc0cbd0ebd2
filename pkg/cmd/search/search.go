/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/find"
	"github.com/metafind/metafind/internal/preview"
	"github.com/metafind/metafind/internal/state"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var fieldFlags []string
	var sortFlags []string

	cmd := &cobra.Command{
		Use:     "search [scope] --field name=pattern ...",
		Aliases: []string{"find"},
		Short:   "Search content items whose metadata matches every field pattern.",
		Long: heredoc.Doc(`
			Search the data directory for content items whose sidecar metadata
			matches all supplied field patterns. Patterns are unanchored regular
			expressions evaluated per field; quotes and backticks are stripped
			before matching. An optional scope argument restricts the search to
			one directory and its subdirectories.

			Examples:
			  metafind search --field Author=Jane
			  metafind search fiction --field Author="Jane Doe" --field Genre=classic
			  metafind search fiction                // unfiltered listing
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := ""
			if len(args) > 0 {
				scope = args[0]
			}
			return run(s, scope, fieldFlags, sortFlags)
		},
	}

	cmd.Flags().
		StringArrayVarP(&fieldFlags, "field", "f", nil, "Field constraint as name=pattern. Repeatable; all must match.")
	cmd.Flags().
		StringSliceVar(&sortFlags, "sort", nil, "Sort fields recorded on the result summary.")

	return cmd
}

func run(s *state.State, scope string, fieldFlags, sortFlags []string) error {
	params := find.Params{s.Config.TriggerParam: {"1"}}

	for _, raw := range fieldFlags {
		name, pattern, ok := strings.Cut(raw, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid field constraint %q; expected name=pattern", raw)
		}
		if err := find.CheckField(s.Config, name); err != nil {
			fmt.Println(faintStyle.Render(err.Error() + "; matching as plain string"))
		}
		param := s.Config.FieldParam(name)
		params[param] = append(params[param], pattern)
	}

	if len(sortFlags) > 0 && s.Config.SortParam != "" {
		params[s.Config.SortParam] = sortFlags
	}

	res, err := s.Engine.Search(find.Request{Scope: scope, Params: params})
	if errors.Is(err, find.ErrEmptyCriteria) || errors.Is(err, find.ErrNotSearch) {
		return list(s, scope)
	}
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Search: " + res.CriteriaSummary))
	if res.SortSummary != "" {
		fmt.Println(faintStyle.Render("sort: " + res.SortSummary))
	}
	for _, issue := range res.Issues {
		fmt.Println(faintStyle.Render(issue.Error()))
	}

	for _, id := range res.IDs {
		fmt.Printf("%s  %s\n", idStyle.Render(id), preview.Title(s.Catalog, id))
	}

	fmt.Println(faintStyle.Render(
		fmt.Sprintf("%d of %d items matched", res.Count, res.Candidates),
	))
	return nil
}

func list(s *state.State, scope string) error {
	ids := s.Engine.List(scope)

	fmt.Println(headerStyle.Render("Listing (no criteria)"))
	for _, id := range ids {
		fmt.Printf("%s  %s\n", idStyle.Render(id), preview.Title(s.Catalog, id))
	}
	fmt.Println(faintStyle.Render(fmt.Sprintf("%d items", len(ids))))
	return nil
}
