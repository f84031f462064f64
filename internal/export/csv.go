package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gorewood/bloggerposts/internal/extract"
	"github.com/gorewood/bloggerposts/internal/output"
)

// Columns is the CSV header, in output order.
var Columns = []string{
	"post_id",
	"post_title",
	"post_content",
	"post_url",
	"post_status",
	"post_date",
	"post_unix_timestamp",
	"post_updated",
	"post_unix_updated_timestamp",
	"post_author",
	"post_labels",
}

// WriteCSV writes summaries to the file at path, replacing any existing file.
// A failed write leaves whatever was already written on disk.
func WriteCSV(summaries []extract.Summary, path string) error {
	file, err := os.Create(path) //nolint:gosec // path is an explicit user-supplied output location
	if err != nil {
		return csvError(path, err)
	}

	if err := EncodeCSV(file, summaries); err != nil {
		_ = file.Close()
		return csvError(path, err)
	}
	if err := file.Close(); err != nil {
		return csvError(path, err)
	}
	return nil
}

// EncodeCSV writes the header and one row per summary to w.
// Rows end with CRLF; line breaks inside quoted fields are written as-is.
func EncodeCSV(w io.Writer, summaries []extract.Summary) error {
	enc := newRowEncoder(w)

	if err := enc.write(Columns); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := enc.write(Row(s)); err != nil {
			return err
		}
	}
	return nil
}

// rowEncoder terminates each record with CRLF itself. csv.Writer.UseCRLF
// would also rewrite line breaks inside quoted fields.
type rowEncoder struct {
	w      io.Writer
	buf    bytes.Buffer
	writer *csv.Writer
}

func newRowEncoder(w io.Writer) *rowEncoder {
	enc := &rowEncoder{w: w}
	enc.writer = csv.NewWriter(&enc.buf)
	return enc
}

func (e *rowEncoder) write(record []string) error {
	e.buf.Reset()
	if err := e.writer.Write(record); err != nil {
		return err
	}
	e.writer.Flush()
	if err := e.writer.Error(); err != nil {
		return err
	}

	line := bytes.TrimSuffix(e.buf.Bytes(), []byte("\n"))
	if _, err := e.w.Write(line); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\r\n")
	return err
}

// Row returns the CSV values for a summary, aligned with Columns.
func Row(s extract.Summary) []string {
	return []string{
		s.ID,
		s.Title,
		s.Content,
		s.URL,
		s.Status,
		s.Date,
		extract.FormatSeconds(s.UnixTimestamp),
		s.Updated,
		extract.FormatSeconds(s.UnixUpdatedTimestamp),
		s.Author,
		s.Labels,
	}
}

func csvError(path string, err error) error {
	return output.NewOutputError(fmt.Sprintf("an error occurred when trying to write to output file %s", path), err)
}
