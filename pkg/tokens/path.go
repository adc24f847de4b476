package tokens

import "strings"

// DefaultDelimiter separates token path segments unless configured otherwise.
const DefaultDelimiter = ":"

// SplitPath splits a joined token path into its segments.
// Returns ErrInvalidPath for an empty path.
//
// Segments are not escaped: a segment containing the delimiter cannot be
// addressed.
func SplitPath(path, delimiter string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	if delimiter == "" {
		return []string{path}, nil
	}
	return strings.Split(path, delimiter), nil
}

// JoinPath joins path segments with the delimiter.
func JoinPath(delimiter string, segments ...string) string {
	return strings.Join(segments, delimiter)
}

// Placeholder returns the bracketed placeholder for a path, e.g. "[site:name]".
func Placeholder(delimiter string, segments ...string) string {
	return "[" + JoinPath(delimiter, segments...) + "]"
}
