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
package form

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/form"
	"github.com/metafind/metafind/internal/state"
)

func NewCmdForm(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Emit the HTML search form for the configured fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := form.Search(s.Config)
			if err != nil {
				return err
			}
			fmt.Print(markup)
			return nil
		},
	}

	return cmd
}
