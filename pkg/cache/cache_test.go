package cache

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3aro/go-jsx-lint/pkg/lint"
	"github.com/l3aro/go-jsx-lint/pkg/syntax"
)

func sampleFindings() []lint.Finding {
	return []lint.Finding{
		{
			Kind:   lint.KindNotInScope,
			Span:   syntax.Span{Start: 8, End: 15, Line: 1, Column: 9},
			Params: map[string]string{"name": "React"},
		},
		{
			Kind:   lint.KindBodyLiteral,
			Span:   syntax.Span{Start: 20, End: 25, Line: 2, Column: 3},
			Params: map[string]string{"text": "hello"},
		},
	}
}

func TestResultCache_Basic(t *testing.T) {
	c := New()
	hash := HashContent([]byte("var a = 1;"))

	_, err := c.Get("app.jsx", hash)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	c.Put("app.jsx", hash, sampleFindings())
	assert.Equal(t, 1, c.Len())

	got, err := c.Get("app.jsx", hash)
	require.NoError(t, err)
	assert.Equal(t, sampleFindings(), got)
}

func TestResultCache_StaleHash(t *testing.T) {
	c := New()
	c.Put("app.jsx", HashContent([]byte("old content")), sampleFindings())

	_, err := c.Get("app.jsx", HashContent([]byte("new content")))
	assert.ErrorIs(t, err, ErrKeyNotFound, "a changed file must miss")
}

func TestResultCache_EmptyFindings(t *testing.T) {
	c := New()
	hash := HashContent([]byte("clean"))
	c.Put("clean.jsx", hash, nil)

	got, err := c.Get("clean.jsx", hash)
	require.NoError(t, err)
	assert.Empty(t, got, "a clean file is a hit, not a miss")
}

func TestResultCache_SaveLoadRoundTrip(t *testing.T) {
	c := New()
	hash := HashContent([]byte("source"))
	c.Put("a.jsx", hash, sampleFindings())
	c.Put("b.jsx", hash, nil)

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))

	loaded := New()
	require.NoError(t, loaded.Load(&buf))
	assert.Equal(t, 2, loaded.Len())

	got, err := loaded.Get("a.jsx", hash)
	require.NoError(t, err)
	assert.Equal(t, sampleFindings(), got)
}

func TestResultCache_SaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.msgpack")

	c := New()
	hash := HashContent([]byte("source"))
	c.Put("a.jsx", hash, sampleFindings())
	require.NoError(t, c.SaveFile(path), "missing parent directories are created")

	loaded := New()
	require.NoError(t, loaded.LoadFile(path))
	assert.Equal(t, 1, loaded.Len())
}

func TestResultCache_LoadMissingFile(t *testing.T) {
	c := New()
	err := c.LoadFile(filepath.Join(t.TempDir(), "absent.msgpack"))
	assert.NoError(t, err, "a missing cache file is a cold start, not an error")
	assert.Equal(t, 0, c.Len())
}

func TestHashContent(t *testing.T) {
	assert.Equal(t, HashContent([]byte("same")), HashContent([]byte("same")))
	assert.NotEqual(t, HashContent([]byte("one")), HashContent([]byte("two")))
}
