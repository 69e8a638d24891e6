package src

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestReadWords(t *testing.T) {
	curDir, err := os.Getwd()
	assert.NoError(t, err)
	tempDir1, err := ioutil.TempDir(curDir, "tempDir")
	assert.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(tempDir1)
	})

	dictPath := filepath.Join(tempDir1, "words.txt")
	err = ioutil.WriteFile(dictPath, []byte("cat\nDog\n\n  bird  \n"), os.ModePerm)
	assert.NoError(t, err)

	words, err := ReadWords(dictPath)
	assert.NoError(t, err)

	if diff := cmp.Diff([]string{"CAT", "DOG", "BIRD"}, words); diff != "" {
		t.Errorf("diff is: %s\n", diff)
	}
}

func TestReadWordsGzip(t *testing.T) {
	curDir, err := os.Getwd()
	assert.NoError(t, err)
	tempDir1, err := ioutil.TempDir(curDir, "tempDir")
	assert.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(tempDir1)
	})

	dictPath := filepath.Join(tempDir1, "words.txt.gz")
	f, err := os.Create(dictPath)
	assert.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("cat\ndog\n"))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())
	assert.NoError(t, f.Close())

	words, err := ReadWords(dictPath)
	assert.NoError(t, err)

	if diff := cmp.Diff([]string{"CAT", "DOG"}, words); diff != "" {
		t.Errorf("diff is: %s\n", diff)
	}
}

func TestReadWordsNonExists(t *testing.T) {
	_, err := ReadWords("nonExistsPath/words.txt")
	assert.Error(t, err)
}
