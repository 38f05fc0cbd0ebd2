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
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metafind/metafind/internal/state"
	"github.com/metafind/metafind/pkg/cmd/initialize"
	"github.com/metafind/metafind/pkg/cmd/root"
)

func main() {
	home, err := state.GetHomeDir()
	cobra.CheckErr(err)

	// init is dispatched before state loads so it works when no usable
	// configuration exists yet.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "initialize", "init", "i":
			initCmd := initialize.NewCmdInit(home)
			initCmd.SetArgs(os.Args[2:])
			if err := initCmd.Execute(); err != nil {
				os.Exit(1)
			}
			return
		}
	}

	s, err := state.NewState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
