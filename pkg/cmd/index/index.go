package index

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/find"
	"github.com/metafind/metafind/internal/form"
	"github.com/metafind/metafind/internal/index"
	"github.com/metafind/metafind/internal/state"
)

var letterStyle = lipgloss.NewStyle().Bold(true)

func NewCmdIndex(s *state.State) *cobra.Command {
	var style string
	var html bool

	cmd := &cobra.Command{
		Use:   "index <field> [scope]",
		Short: "Build an alphabetical index over a field's distinct values.",
		Long: heredoc.Doc(`
			Collect the distinct values of one metadata field across the scope
			and group them alphabetically. The short style lists only first
			letters, medium lists every value, and long groups values under
			per-letter headings. Each entry carries the query string that
			reproduces the matching search.

			Examples:
			  metafind index Author
			  metafind index Title fiction --style long
			  metafind index Author --html
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := ""
			if len(args) > 1 {
				scope = args[1]
			}
			return run(s, args[0], scope, index.Style(style), html)
		},
	}

	cmd.Flags().
		StringVar(&style, "style", string(index.StyleMedium), "Index style: short, medium, or long.")
	cmd.Flags().
		BoolVar(&html, "html", false, "Emit the rendered HTML fragment instead of plain entries.")

	return cmd
}

func run(s *state.State, field, scope string, style index.Style, html bool) error {
	switch style {
	case index.StyleShort, index.StyleMedium, index.StyleLong:
	default:
		return fmt.Errorf("invalid style %q; choose from 'short', 'medium', or 'long'", style)
	}

	if err := find.CheckField(s.Config, field); err != nil {
		fmt.Println(err.Error() + "; indexing as plain string")
	}

	idx := s.Index.Build(field, scope, style)

	if html {
		markup, err := form.Index(idx, form.Action(s.Config))
		if err != nil {
			return err
		}
		fmt.Print(markup)
		return nil
	}

	if style == index.StyleLong {
		for _, group := range idx.Groups {
			fmt.Println(letterStyle.Render(group.Letter))
			for _, link := range group.Links {
				fmt.Printf("  %s\t%s\n", link.Label, link.Query)
			}
		}
		return nil
	}

	for _, link := range idx.Links {
		fmt.Printf("%s\t%s\n", link.Label, link.Query)
	}
	return nil
}
