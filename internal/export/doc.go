// Package export writes extracted Blogger posts to disk.
//
// # CSV Summary
//
// WriteCSV writes one header row and one row per summary, in the order given:
//
//	post_id,post_title,post_content,post_url,post_status,post_date,
//	post_unix_timestamp,post_updated,post_unix_updated_timestamp,post_author,post_labels
//
// Rows end with CRLF. Carriage returns and newlines inside a field are kept
// verbatim within quotes. Fields are quoted when they contain a comma, quote
// or line break, and also when they start with a space or tab, which the
// previous Python tool left unquoted; readers parse both forms the same.
// Timestamps are written as decimal seconds ("1672531200.0").
//
// # HTML Documents
//
// WriteDocuments writes each post's raw HTML body to its own file:
//
//	<dir>/<integer unix timestamp>.html
//
// The timestamp is truncated, not rounded. Posts sharing a second share a
// file name, and the later post overwrites the earlier one.
//
// # Directories
//
// EnsureParentDir and EnsureDir create missing directories (including
// intermediate ones) before anything is written.
package export
