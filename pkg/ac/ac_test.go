package ac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcSearch(t *testing.T) {
	dict := []string{"guaranteed win", "offshore scheme"}
	require.NoError(t, InitAc(dict))

	hit, words := AcSearch("I want a Guaranteed Win in court", dict, true)
	assert.True(t, hit)
	assert.Contains(t, words, "guaranteed win")

	hit, words = AcSearch("how do deposits work", dict, true)
	assert.False(t, hit)
	assert.Nil(t, words)
}

func TestAcSearchEmpty(t *testing.T) {
	hit, words := AcSearch("anything", nil, true)
	assert.False(t, hit)
	assert.Nil(t, words)

	dict := []string{"word"}
	require.NoError(t, InitAc(dict))
	hit, _ = AcSearch("", dict, true)
	assert.False(t, hit)
}
