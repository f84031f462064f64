// Package blogger reads Blogger post exports.
//
// An export is the JSON document returned by the Blogger Posts API list
// call: a top-level object whose "items" array holds one object per post.
//
//	posts, err := blogger.Load("input/blogger_posts.json")
//
// Posts are kept as raw JSON fields rather than decoded into a fixed struct.
// Callers decide per field whether absence is an error (Text, StringValue, Object) or
// yields an empty value (OptionalText, Strings).
package blogger
