package src

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"wordtrie/src/trie"
	"wordtrie/util"
)

var letterValues = generateLetterValues()

func generateLetterValues() map[string]int {
	values := make(map[string]int)
	for value, letters := range map[int]string{
		1:  "LSUNRTOAIE",
		2:  "GD",
		3:  "BCMP",
		4:  "FHVWY",
		5:  "K",
		8:  "JX",
		10: "QZ",
	} {
		for i := 0; i < len(letters); i++ {
			values[letters[i:i+1]] = value
		}
	}

	return values
}

// Score is the Scrabble value of a word.
func Score(word string) int {
	sum := 0
	for i := 0; i < len(word); i++ {
		sum += letterValues[word[i:i+1]]
	}

	return sum
}

// Hand is a rack of tiles, letter to remaining count.
type Hand map[string]int

// GenerateDefaultHand is the full standard bag, excluding the 2 blanks.
func GenerateDefaultHand() Hand {
	h := make(Hand)
	for count, letters := range map[int]string{
		12: "E",
		9:  "AI",
		8:  "O",
		6:  "NRT",
		4:  "LSDU",
		3:  "G",
		2:  "BCMPFHVWY",
		1:  "KJXQZ",
	} {
		for i := 0; i < len(letters); i++ {
			h[letters[i:i+1]] = count
		}
	}

	return h
}

func GenerateHand(tiles string) (Hand, error) {
	if len(tiles) == 0 {
		return nil, &trie.EmptyInputError{Kind: "tiles"}
	}

	h := make(Hand)
	for i := 0; i < len(tiles); i++ {
		c := tiles[i : i+1]
		if _, ok := letterValues[c]; !ok {
			return nil, &trie.InvalidAlphabetError{Input: tiles, Char: c, Pos: i}
		}
		h[c]++
	}

	return h, nil
}

func (h Hand) Total() int {
	sum := 0
	for _, n := range h {
		sum += n
	}

	return sum
}

func (h Hand) CanPlay(word string) bool {
	need := make(map[string]int)
	for i := 0; i < len(word); i++ {
		need[word[i:i+1]]++
	}

	for c, n := range need {
		if h[c] < n {
			return false
		}
	}

	return true
}

// Play removes the word's tiles from the hand if they are all there,
// reporting whether the word was played.
func (h Hand) Play(word string) bool {
	if !h.CanPlay(word) {
		return false
	}

	for i := 0; i < len(word); i++ {
		h[word[i:i+1]]--
	}

	return true
}

// Unplay returns a played word's tiles to the hand.
func (h Hand) Unplay(word string) {
	for i := 0; i < len(word); i++ {
		h[word[i:i+1]]++
	}
}

func (h Hand) String() string {
	var parts []string
	for _, c := range util.SortedKeys(h) {
		if h[c] > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", c, h[c]))
		}
	}

	return strings.Join(parts, " ")
}

type ScrabbleOption struct {
	Tiles     string
	NumBest   int
	NumRandom int
}

// StartScrabble searches the dictionary with the pattern, keeps the
// words playable from the hand, and prints the NumBest highest scoring
// ones followed by a random sample of NumRandom.
func StartScrabble(w io.Writer, pattern, dictPath string, option *ScrabbleOption) error {
	hand := GenerateDefaultHand()
	if option.Tiles != "" {
		var err error
		hand, err = GenerateHand(option.Tiles)
		if err != nil {
			return err
		}
	}

	t, err := LoadTrie(dictPath)
	if err != nil {
		return err
	}

	matched, err := t.Search(pattern)
	if err != nil {
		return err
	}

	var playable []string
	for _, m := range matched {
		if hand.CanPlay(m) {
			playable = append(playable, m)
		}
	}

	fmt.Fprintf(w, "tiles: %s (%d total)\n", hand, hand.Total())

	q := util.GeneratePriorityQueue()
	for _, p := range playable {
		q.Push(&util.Item{Word: p, Score: Score(p)})
	}

	nBest := option.NumBest
	if nBest > q.Len() {
		nBest = q.Len()
	}
	fmt.Fprintf(w, "top %d words matching %q:\n", nBest, pattern)
	for i := 0; i < nBest; i++ {
		item := q.Pop()
		fmt.Fprintf(w, "%s %d\n", item.Word, item.Score)
	}

	nRandom := option.NumRandom
	if nRandom > len(playable) {
		nRandom = len(playable)
	}
	fmt.Fprintf(w, "%d random words matching %q:\n", nRandom, pattern)
	shuffled := append([]string(nil), playable...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for _, p := range shuffled[:nRandom] {
		fmt.Fprintf(w, "%s %d\n", p, Score(p))
	}

	return nil
}
