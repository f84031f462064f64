package blogger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePost(t *testing.T, src string) Post {
	t.Helper()
	var post Post
	require.NoError(t, json.Unmarshal([]byte(src), &post))
	return post
}

func TestPost_Text(t *testing.T) {
	post := decodePost(t, `{"id": "123", "title": null, "status": 7, "url": {"a": [1, 2]}}`)

	tests := []struct {
		field string
		want  string
	}{
		{"id", "123"},
		{"title", ""},
		{"status", "7"},
		{"url", `{"a":[1,2]}`},
	}
	for _, tt := range tests {
		got, err := post.Text(tt.field)
		require.NoError(t, err, tt.field)
		assert.Equal(t, tt.want, got, tt.field)
	}

	_, err := post.Text("missing")
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestPost_OptionalText(t *testing.T) {
	post := decodePost(t, `{"displayName": "Ada"}`)
	assert.Equal(t, "Ada", post.OptionalText(FieldDisplayName))
	assert.Equal(t, "", post.OptionalText("absent"))
}

func TestPost_StringValue(t *testing.T) {
	post := decodePost(t, `{"content": "<p>hi</p>", "updated": null, "published": 5}`)

	got, err := post.StringValue(FieldContent)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", got)

	_, err = post.StringValue(FieldUpdated)
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = post.StringValue(FieldPublished)
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = post.StringValue(FieldURL)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestPost_Object(t *testing.T) {
	post := decodePost(t, `{"author": {"displayName": "Ada"}, "nullAuthor": null, "strAuthor": "Ada"}`)

	author, err := post.Object(FieldAuthor)
	require.NoError(t, err)
	assert.Equal(t, "Ada", author.OptionalText(FieldDisplayName))

	_, err = post.Object("nullAuthor")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = post.Object("strAuthor")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = post.Object("absent")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestPost_Strings(t *testing.T) {
	post := decodePost(t, `{"lables": ["zebra", "apple"], "empty": [], "none": null, "bad": "zebra"}`)

	list, ok, err := post.Strings(FieldLabels)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"zebra", "apple"}, list)

	list, ok, err = post.Strings("empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, list)

	_, ok, err = post.Strings("none")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = post.Strings("absent")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = post.Strings("bad")
	assert.ErrorIs(t, err, ErrWrongType)
}
