package src

import (
	"fmt"
	"io"
	"wordtrie/src/trie"

	"github.com/TwinProduction/go-color"
	"github.com/rs/zerolog/log"
)

type SearchOption struct {
	Plain bool
}

func StartSearch(w io.Writer, pattern, dictPath string, option *SearchOption) error {
	t, err := LoadTrie(dictPath)
	if err != nil {
		return err
	}

	matched, err := t.Search(pattern)
	if err != nil {
		return err
	}

	for _, m := range matched {
		fmt.Fprintln(w, Highlight(m, pattern, option.Plain))
	}

	return nil
}

// LoadTrie reads the dictionary at dictPath and indexes it. Lines the
// trie rejects are logged and skipped, not fatal.
func LoadTrie(dictPath string) (*trie.Trie, error) {
	words, err := ReadWords(dictPath)
	if err != nil {
		return nil, err
	}

	t, rejected := trie.GenerateFromWords(words)
	for _, r := range rejected {
		log.Warn().Str("word", r.Word).Err(r.Err).Msg("skipped dictionary entry")
	}
	log.Debug().Int("words", t.NumWords()).Str("path", dictPath).Msg("dictionary indexed")

	return t, nil
}

// Highlight colors the letters the wildcard positions resolved to.
func Highlight(word, pattern string, plain bool) string {
	if plain {
		return word
	}

	var out string
	for i := 0; i < len(word); i++ {
		if i < len(pattern) && pattern[i:i+1] == trie.Wildcard {
			out += color.Ize(color.Yellow, word[i:i+1])
		} else {
			out += word[i : i+1]
		}
	}

	return out
}
