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

var tiles string
var numBest int
var numRandom int

// scrabbleCmd represents the scrabble command
var scrabbleCmd = &cobra.Command{
	Use:   "scrabble <pattern> [dictionary]",
	Short: "rank matching words by Scrabble score, limited to playable tiles",
	Long: `rank matching words by Scrabble score, limited to playable tiles

Searches the dictionary with the wildcard pattern, keeps only words
playable from the tile rack (the full standard bag unless --tiles is
given), and prints the highest scoring ones plus a random sample.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {

		dict := viper.GetString("dictionary")
		if len(args) == 2 {
			dict = args[1]
		}

		so := &src.ScrabbleOption{
			Tiles:     tiles,
			NumBest:   viper.GetInt("best"),
			NumRandom: viper.GetInt("random"),
		}

		w := os.Stdout
		if err := src.StartScrabble(w, args[0], dict, so); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	scrabbleCmd.Flags().StringVarP(&tiles, "tiles", "t", "", "tile rack, letters A-Z")
	scrabbleCmd.Flags().IntVar(&numBest, "best", 20, "number of top scoring words to show")
	scrabbleCmd.Flags().IntVar(&numRandom, "random", 10, "number of random words to show")
	viper.BindPFlag("best", scrabbleCmd.Flags().Lookup("best"))
	viper.BindPFlag("random", scrabbleCmd.Flags().Lookup("random"))
	rootCmd.AddCommand(scrabbleCmd)
}
