// Package extract derives CSV summaries and HTML documents from Blogger posts.
package extract

import (
	"fmt"

	"github.com/gorewood/bloggerposts/internal/blogger"
	"github.com/gorewood/bloggerposts/internal/output"
)

// Result holds everything derived from one export.
// Summaries are sorted by publication time; Documents keep input order.
type Result struct {
	Summaries []Summary
	Documents []Document
}

// Posts derives a Summary and a Document from every post.
// The first post that fails aborts extraction with an output.KindRecord error.
func Posts(posts []blogger.Post) (Result, error) {
	result := Result{
		Summaries: make([]Summary, 0, len(posts)),
		Documents: make([]Document, 0, len(posts)),
	}

	for i, post := range posts {
		summary, err := Summarize(post)
		if err != nil {
			return Result{}, recordError(i, err)
		}
		result.Summaries = append(result.Summaries, summary)

		doc, err := DocumentOf(post)
		if err != nil {
			return Result{}, recordError(i, err)
		}
		result.Documents = append(result.Documents, doc)
	}

	SortByPublished(result.Summaries)
	return result, nil
}

func recordError(index int, err error) error {
	return output.NewRecordError(fmt.Sprintf("an error occurred when extracting post items[%d]", index), err)
}
