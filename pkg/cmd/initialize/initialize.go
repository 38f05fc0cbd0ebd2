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
package initialize

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/config"
)

// NewCmdInit takes the home directory rather than a *state.State because it
// has to work before a usable configuration exists.
func NewCmdInit(home string) *cobra.Command {
	var (
		dataDir       string
		baseURL       string
		infoPath      string
		contentSuffix string
		sidecarSuffix string
	)

	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"i", "init"},
		Short:   "Write the starter configuration file.",
		Long:    "This command sets up the metafind configuration, pointing it at the directory holding your content and sidecar metadata files.",
		Example: "metafind init --datadir ~/site/content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(dataDir) == "" {
				return errors.New("--datadir is required")
			}

			cfg, err := loadExisting(home)
			if err != nil {
				return err
			}

			cfg.DataDir = dataDir
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("info-path") {
				cfg.InfoPath = infoPath
			}
			if cmd.Flags().Changed("content-suffix") {
				cfg.ContentSuffix = contentSuffix
			}
			if cmd.Flags().Changed("sidecar-suffix") {
				cfg.SidecarSuffix = sidecarSuffix
			}

			if err := cfg.Save(home); err != nil {
				return err
			}

			fmt.Printf("Wrote configuration to %s\n", config.GetConfigPath(home))
			return nil
		},
	}

	cmd.Flags().
		StringVar(&dataDir, "datadir", "", "Directory holding content items and their sidecar metadata files")
	cmd.Flags().
		StringVar(&baseURL, "base-url", "", "Base URL of the generated site, used when building search links")
	cmd.Flags().
		StringVar(&infoPath, "info-path", "", "Site path of the search results page")
	cmd.Flags().
		StringVar(&contentSuffix, "content-suffix", config.DefaultContentSuffix, "Suffix of content item files")
	cmd.Flags().
		StringVar(&sidecarSuffix, "sidecar-suffix", config.DefaultSidecarSuffix, "Suffix appended to a content file's name for its sidecar")

	return cmd
}

// loadExisting keeps previously configured values when the config file is
// already present, so re-running init only overwrites what was flagged.
func loadExisting(home string) (*config.Config, error) {
	cfg, err := config.Load(home)
	if err != nil {
		if os.IsNotExist(err) {
			return config.NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
