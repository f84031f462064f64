package extract

import (
	"github.com/gorewood/bloggerposts/internal/blogger"
)

// Document is a post's unmodified HTML body keyed by its publication time.
type Document struct {
	UnixTimestamp float64
	RawContent    string
}

// DocumentOf builds the Document for one post.
func DocumentOf(post blogger.Post) (Document, error) {
	_, seconds, err := timestampField(post, blogger.FieldPublished)
	if err != nil {
		return Document{}, err
	}
	content, err := post.StringValue(blogger.FieldContent)
	if err != nil {
		return Document{}, err
	}
	return Document{UnixTimestamp: seconds, RawContent: content}, nil
}
