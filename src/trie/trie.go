package trie

import (
	"wordtrie/util"
)

// Wildcard matches any single letter at its position in a search pattern.
const Wildcard = "."

type Trie struct {
	Matched  bool
	Children map[string]*Trie
}

func Generate() *Trie {
	return &Trie{
		Matched:  false,
		Children: make(map[string]*Trie),
	}
}

type Rejected struct {
	Word string
	Err  error
}

// GenerateFromWords builds a trie from words in order. Words that fail
// Insert are collected instead of aborting the whole load.
func GenerateFromWords(words []string) (*Trie, []Rejected) {
	root := Generate()

	var rejected []Rejected
	for _, w := range words {
		if err := root.Insert(w); err != nil {
			rejected = append(rejected, Rejected{Word: w, Err: err})
		}
	}

	return root, rejected
}

func (t *Trie) ChildrenHasKey(key string) bool {
	_, ok := t.Children[key]
	return ok
}

func (t *Trie) GetOrCreateChildren(key string) *Trie {
	_, ok := t.Children[key]
	if !ok {
		t.Children[key] = Generate()
	}

	return t.Children[key]
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// Insert adds one word of uppercase letters. Validation runs before any
// node is created, so a failed Insert leaves the trie untouched.
// Inserting the same word again is a no-op.
func (t *Trie) Insert(word string) error {
	if len(word) == 0 {
		return &EmptyInputError{Kind: "word"}
	}

	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return &InvalidAlphabetError{Input: word, Char: word[i : i+1], Pos: i}
		}
	}

	cur := t
	for i := 0; i < len(word); i++ {
		cur = cur.GetOrCreateChildren(word[i : i+1])
	}
	cur.Matched = true //最後のnodeだけtrue

	return nil
}

// Node descends to the subtrie reached by prefix, or nil if no stored
// word starts with it. Node("") is the trie itself.
func (t *Trie) Node(prefix string) *Trie {
	cur := t
	for i := 0; i < len(prefix); i++ {
		child, ok := cur.Children[prefix[i:i+1]]
		if !ok {
			return nil
		}
		cur = child
	}

	return cur
}

func (t *Trie) Contains(word string) bool {
	n := t.Node(word)
	return n != nil && n.Matched
}

func (t *Trie) NumWords() int {
	count := 0
	if t.Matched {
		count++
	}
	for _, child := range t.Children {
		count += child.NumWords()
	}

	return count
}

// Search returns every stored word matching pattern position by
// position. A letter must match exactly, Wildcard matches any one
// letter, so every result has exactly len(pattern) letters. Results
// come back in alphabetical order. An empty result is not an error.
func (t *Trie) Search(pattern string) ([]string, error) {
	if len(pattern) == 0 {
		return nil, &EmptyInputError{Kind: "pattern"}
	}

	for i := 0; i < len(pattern); i++ {
		if !isLetter(pattern[i]) && pattern[i:i+1] != Wildcard {
			return nil, &InvalidAlphabetError{Input: pattern, Char: pattern[i : i+1], Pos: i}
		}
	}

	var matched []string
	t.traverse(pattern, "", &matched)

	return matched, nil
}

func (t *Trie) traverse(pattern, prefix string, matched *[]string) {
	if len(pattern) == 0 {
		if t.Matched {
			*matched = append(*matched, prefix)
		}
		return
	}

	key := pattern[0:1]

	if key == Wildcard {
		//sortedで回すのでresultはalphabetical順になる
		for _, k := range util.SortedKeys(t.Children) {
			t.Children[k].traverse(pattern[1:], prefix+k, matched)
		}
		return
	}

	child, ok := t.Children[key]
	if !ok {
		return
	}
	child.traverse(pattern[1:], prefix+key, matched)
}
