package extract

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gorewood/bloggerposts/internal/blogger"
)

// Summary is the flat, CSV-ready view of one post.
type Summary struct {
	ID                   string
	Title                string
	Content              string
	URL                  string
	Status               string
	Date                 string
	UnixTimestamp        float64
	Updated              string
	UnixUpdatedTimestamp float64
	Author               string
	Labels               string
}

// Summarize builds the Summary for one post.
//
// id, title, content, url, status, published, updated and author must all be
// present; author.displayName may be missing. Content has each newline
// replaced by a space and a trailing comma appended, which downstream
// consumers of the CSV rely on.
func Summarize(post blogger.Post) (Summary, error) {
	var s Summary
	var err error

	if s.ID, err = post.Text(blogger.FieldID); err != nil {
		return Summary{}, err
	}
	if s.Title, err = post.Text(blogger.FieldTitle); err != nil {
		return Summary{}, err
	}

	content, err := post.StringValue(blogger.FieldContent)
	if err != nil {
		return Summary{}, err
	}
	s.Content = flattenContent(content)

	if s.URL, err = post.Text(blogger.FieldURL); err != nil {
		return Summary{}, err
	}
	if s.Status, err = post.Text(blogger.FieldStatus); err != nil {
		return Summary{}, err
	}

	if s.Date, s.UnixTimestamp, err = timestampField(post, blogger.FieldPublished); err != nil {
		return Summary{}, err
	}
	if s.Updated, s.UnixUpdatedTimestamp, err = timestampField(post, blogger.FieldUpdated); err != nil {
		return Summary{}, err
	}

	author, err := post.Object(blogger.FieldAuthor)
	if err != nil {
		return Summary{}, err
	}
	s.Author = author.OptionalText(blogger.FieldDisplayName)

	if s.Labels, err = joinLabels(post); err != nil {
		return Summary{}, err
	}

	return s, nil
}

// SortByPublished stable-sorts summaries by UnixTimestamp, oldest first.
func SortByPublished(summaries []Summary) {
	slices.SortStableFunc(summaries, func(a, b Summary) int {
		return cmp.Compare(a.UnixTimestamp, b.UnixTimestamp)
	})
}

func flattenContent(content string) string {
	return strings.ReplaceAll(content, "\n", " ") + ","
}

// timestampField returns the original string and its epoch seconds.
func timestampField(post blogger.Post, name string) (string, float64, error) {
	value, err := post.StringValue(name)
	if err != nil {
		return "", 0, err
	}
	t, err := ParseTimestamp(value)
	if err != nil {
		return "", 0, fmt.Errorf("field %q: %w", name, err)
	}
	return value, EpochSeconds(t), nil
}

// joinLabels sorts and joins the labels with ", ".
// A missing or null field yields ""; an empty list is kept as "[]".
func joinLabels(post blogger.Post) (string, error) {
	labels, ok, err := post.Strings(blogger.FieldLabels)
	if err != nil || !ok {
		return "", err
	}
	if len(labels) == 0 {
		return "[]", nil
	}
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	return strings.Join(sorted, ", "), nil
}
