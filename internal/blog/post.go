package blog

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// dateLayout is the calendar prefix posts must carry: YYYY-MM-DD.
const dateLayout = "2006-01-02"

// Post is one dated content file discovered under the posts directory.
// It is pure metadata: the file's content is read only when the post is
// grafted into the book.
type Post struct {
	// Path is the file location as discovered during the walk.
	Path string
	// Date is the calendar date parsed from the filename prefix.
	Date time.Time
	// Name is the filename remainder after the date prefix, extension
	// stripped. It is the sort key for the name orderings.
	Name string
	// ParentName is the section the post is filed under.
	ParentName string
}

// ExtractDate parses the calendar date encoded in a post's base name. The
// date is everything before the third hyphen and must be a real
// YYYY-MM-DD date; the rest of the name is free form. Returns an error
// when the name has fewer than three hyphens or the prefix is not a valid
// date.
func ExtractDate(basename string) (time.Time, error) {
	idx := thirdHyphen(basename)
	if idx < 0 {
		return time.Time{}, fmt.Errorf("filename %q has no YYYY-MM-DD- prefix", basename)
	}
	date, err := time.Parse(dateLayout, basename[:idx])
	if err != nil {
		return time.Time{}, fmt.Errorf("filename %q has no valid date prefix: %w", basename, err)
	}
	return date, nil
}

// PostName derives a post's name from its base name: the part after the
// date prefix, with the extension stripped. Returns "" when the base name
// has no date prefix to strip.
func PostName(basename string) string {
	idx := thirdHyphen(basename)
	if idx < 0 || idx+1 >= len(basename) {
		return ""
	}
	rest := basename[idx+1:]
	return strings.TrimSuffix(rest, filepath.Ext(rest))
}

// thirdHyphen returns the byte offset of the third hyphen in s, or -1
// when s contains fewer than three.
func thirdHyphen(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			count++
			if count == 3 {
				return i
			}
		}
	}
	return -1
}
