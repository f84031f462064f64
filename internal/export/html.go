package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorewood/bloggerposts/internal/extract"
	"github.com/gorewood/bloggerposts/internal/output"
)

// DocumentFilename returns the file name for a document: its publication
// time truncated to whole seconds, plus ".html".
func DocumentFilename(doc extract.Document) string {
	return strconv.FormatInt(int64(doc.UnixTimestamp), 10) + ".html"
}

// WriteDocuments writes each document's raw content into dir, in order.
// The first failed write aborts the rest.
func WriteDocuments(docs []extract.Document, dir string) error {
	for _, doc := range docs {
		filename := filepath.Join(dir, DocumentFilename(doc))

		//nolint:gosec // HTML output is meant to be world-readable
		if err := os.WriteFile(filename, []byte(doc.RawContent), 0o644); err != nil {
			return output.NewOutputError(fmt.Sprintf("an error occurred when trying to write the HTML file %s", filename), err)
		}
	}

	return nil
}
