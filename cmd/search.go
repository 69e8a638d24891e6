/*
Copyright © 2021 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"os"
	"wordtrie/src"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var plain bool

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <pattern> [dictionary]",
	Short: "list dictionary words matching a wildcard pattern",
	Long: `list dictionary words matching a wildcard pattern

The pattern is matched position by position: a letter A-Z must match
exactly, '.' matches any single letter. The dictionary argument falls
back to the "dictionary" config entry and may end in .gz.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {

		dict := viper.GetString("dictionary")
		if len(args) == 2 {
			dict = args[1]
		}

		so := &src.SearchOption{
			Plain: plain || !viper.GetBool("color"),
		}

		w := os.Stdout
		if err := src.StartSearch(w, args[0], dict, so); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&plain, "plain", "p", false, "do not highlight wildcard letters")
	rootCmd.AddCommand(searchCmd)
}
