package fields

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/config"
	"github.com/metafind/metafind/internal/state"
)

var nameStyle = lipgloss.NewStyle().Bold(true)

func NewCmdFields(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the configured searchable fields and their types.",
		Run: func(cmd *cobra.Command, args []string) {
			names := s.Config.FieldNames()
			if len(names) == 0 {
				fmt.Println("No fields are configured; every field defaults to string matching.")
				return
			}

			for _, name := range names {
				spec := s.Config.Spec(name)
				line := fmt.Sprintf("%s  %s", nameStyle.Render(name), spec.Type)
				if spec.Type == config.FieldLimited && len(spec.Allowed) > 0 {
					line += "  (" + strings.Join(spec.Allowed, ", ") + ")"
				}
				fmt.Println(line)
			}
		},
	}

	return cmd
}
