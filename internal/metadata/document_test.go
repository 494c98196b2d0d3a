package metadata

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	t.Run("preserves key order", func(t *testing.T) {
		doc, err := DecodeDocument([]byte(`{"zeta":"1","alpha":"2","mid":"3"}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.Keys())
	})

	t.Run("rejects non-object roots", func(t *testing.T) {
		for _, payload := range []string{`[]`, `"string"`, `42`, `true`, `null`} {
			_, err := DecodeDocument([]byte(payload))
			assert.ErrorIs(t, err, errNotObject, "payload %s", payload)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := DecodeDocument([]byte(`{"a":`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errNotObject)
	})

	t.Run("rejects trailing content", func(t *testing.T) {
		_, err := DecodeDocument([]byte(`{"a":"b"} trailing`))
		require.Error(t, err)
	})

	t.Run("decodes nested objects as ordered documents", func(t *testing.T) {
		doc, err := DecodeDocument([]byte(`{"outer":{"b":1,"a":2}}`))
		require.NoError(t, err)
		v, ok := doc.Get("outer")
		require.True(t, ok)
		inner, ok := v.(*Document)
		require.True(t, ok)
		assert.Equal(t, []string{"b", "a"}, inner.Keys())
	})

	t.Run("keeps number text verbatim", func(t *testing.T) {
		doc, err := DecodeDocument([]byte(`{"n":1.50}`))
		require.NoError(t, err)
		s, ok := doc.GetString("n")
		require.True(t, ok)
		assert.Equal(t, "1.50", s)
	})
}

func TestDocumentEncode(t *testing.T) {
	t.Run("pretty prints with two-space indent and trailing newline", func(t *testing.T) {
		doc := NewDocument()
		doc.Set("version", "1.0.0")
		doc.Set("minAppVersion", "0.15.0")

		var buf bytes.Buffer
		require.NoError(t, doc.Encode(&buf))
		assert.Equal(t, "{\n  \"version\": \"1.0.0\",\n  \"minAppVersion\": \"0.15.0\"\n}\n", buf.String())
	})

	t.Run("empty document encodes as {}", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDocument().Encode(&buf))
		assert.Equal(t, "{}\n", buf.String())
	})

	t.Run("round trip is byte stable", func(t *testing.T) {
		input := "{\n  \"id\": \"sample-plugin\",\n  \"version\": \"1.0.0\",\n  \"minAppVersion\": \"0.15.0\",\n  \"isDesktopOnly\": false,\n  \"tags\": [\n    \"one\",\n    \"two\"\n  ],\n  \"author\": {\n    \"name\": \"Someone\",\n    \"url\": \"https://example.com/?a=1&b=2\"\n  }\n}\n"
		doc, err := DecodeDocument([]byte(input))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, doc.Encode(&buf))
		assert.Equal(t, input, buf.String())
	})

	t.Run("does not escape HTML characters", func(t *testing.T) {
		doc := NewDocument()
		doc.Set("url", "https://example.com/?a=1&b=<2>")

		var buf bytes.Buffer
		require.NoError(t, doc.Encode(&buf))
		assert.Contains(t, buf.String(), "https://example.com/?a=1&b=<2>")
	})
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "0.15.0", StringValue("0.15.0"))
	assert.Equal(t, "1.5", StringValue(json.Number("1.5")))
	assert.Equal(t, "true", StringValue(true))
	assert.Equal(t, "false", StringValue(false))
	assert.Equal(t, "null", StringValue(nil))
}

func TestDocumentSet(t *testing.T) {
	doc := NewDocument()
	doc.Set("a", "1")
	doc.Set("b", "2")
	doc.Set("a", "updated")

	assert.Equal(t, []string{"a", "b"}, doc.Keys(), "updating must not reorder keys")
	v, _ := doc.GetString("a")
	assert.Equal(t, "updated", v)
}
