package src

import (
	"bytes"
	"strings"
	"testing"
	"wordtrie/src/trie"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {

	for _, d := range []struct {
		word     string
		expected int
	}{
		{"HELLO", 8},
		{"QUIZ", 22},
		{"CAT", 5},
		{"A", 1},
	} {
		t.Run(d.word, func(t *testing.T) {
			assert.Equal(t, d.expected, Score(d.word))
		})
	}
}

func TestPlayUnplay(t *testing.T) {
	hand := GenerateDefaultHand()
	assert.Equal(t, 98, hand.Total())

	assert.True(t, hand.Play("HELLO"))
	assert.Equal(t, 2, hand["L"])

	//Lは残り2枚なのでLOLLYは出せない
	assert.False(t, hand.Play("LOLLY"))

	hand.Unplay("HELLO")
	assert.Equal(t, 4, hand["L"])

	if diff := cmp.Diff(GenerateDefaultHand(), hand); diff != "" {
		t.Errorf("diff is: %s\n", diff)
	}
}

func TestGenerateHand(t *testing.T) {
	hand, err := GenerateHand("AAB")
	assert.NoError(t, err)
	assert.Equal(t, 2, hand["A"])
	assert.Equal(t, 1, hand["B"])
	assert.Equal(t, 3, hand.Total())

	_, err = GenerateHand("")
	assert.IsType(t, &trie.EmptyInputError{}, err)

	_, err = GenerateHand("AB1")
	assert.IsType(t, &trie.InvalidAlphabetError{}, err)
}

func TestCanPlay(t *testing.T) {
	hand, err := GenerateHand("CATDOG")
	assert.NoError(t, err)

	assert.True(t, hand.CanPlay("CAT"))
	assert.True(t, hand.CanPlay("DOG"))
	assert.True(t, hand.CanPlay("TOAD"))

	assert.False(t, hand.CanPlay("TOO")) //Oは1枚だけ
	assert.False(t, hand.CanPlay("CATS"))
}

func TestHandString(t *testing.T) {
	hand, err := GenerateHand("BAAC")
	assert.NoError(t, err)

	assert.Equal(t, "A:2 B:1 C:1", hand.String())
}

func TestStartScrabble(t *testing.T) {
	dictPath := createDict(t, "cat\ncar\ncan\ncab\ndog\n")

	var buf bytes.Buffer
	so := &ScrabbleOption{NumBest: 2, NumRandom: 0}
	err := StartScrabble(&buf, "CA.", dictPath, so)
	assert.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	//スコア順、同点はalphabetical順: CAB 7, CAN 5, CAR 5, CAT 5
	assert.Contains(t, out, `top 2 words matching "CA."`)
	assert.Equal(t, "CAB 7", lines[2])
	assert.Equal(t, "CAN 5", lines[3])
}

func TestStartScrabbleTiles(t *testing.T) {
	dictPath := createDict(t, "cat\ncab\n")

	var buf bytes.Buffer
	so := &ScrabbleOption{Tiles: "CAT", NumBest: 5, NumRandom: 0}
	err := StartScrabble(&buf, "CA.", dictPath, so)
	assert.NoError(t, err)

	//rackにBがないのでCABは出せない
	assert.Contains(t, buf.String(), "CAT 5")
	assert.NotContains(t, buf.String(), "CAB")
}
