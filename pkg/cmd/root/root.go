package root

import (
	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/constants"
	"github.com/metafind/metafind/internal/state"
	"github.com/metafind/metafind/pkg/cmd/fields"
	"github.com/metafind/metafind/pkg/cmd/form"
	indexcmd "github.com/metafind/metafind/pkg/cmd/index"
	"github.com/metafind/metafind/pkg/cmd/initialize"
	"github.com/metafind/metafind/pkg/cmd/search"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "metafind",
		Aliases: []string{"mf"},
		Version: constants.Version,
		Short:   "Search and browse site content by sidecar metadata.",
		Long: `Field-based metadata search for generated sites: filter content items
whose sidecar records match every supplied field pattern, and build
alphabetical browse indexes over a field's distinct values.

  metafind search fiction --field Author=Jane
  metafind index Author --style long
`,
	}

	cmd.AddCommand(
		search.NewCmdSearch(s),
		indexcmd.NewCmdIndex(s),
		form.NewCmdForm(s),
		fields.NewCmdFields(s),
		initialize.NewCmdInit(s.Home),
	)

	return cmd, nil
}
