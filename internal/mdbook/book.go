// Package mdbook implements the slice of the mdBook preprocessor protocol
// this tool needs: the book tree model with its serde-compatible JSON
// encoding, the preprocessor context, and the stdin handshake.
//
// mdBook owns the full lifecycle of the book (loading, rendering,
// serialization); a preprocessor only ever sees one [context, book] message
// per build and answers with a mutated book on stdout.
package mdbook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SectionNumber is a chapter's hierarchical section number, e.g. [1, 2]
// for chapter 1.2. A nil number marks an unnumbered (draft or appended)
// chapter and encodes as JSON null.
type SectionNumber []uint32

// Chapter is a titled, bodied leaf of the book tree.
//
// Path and SourcePath are nil for draft chapters. For chapters that exist
// on disk both must be relative to the book's source root; the renderer
// assumes root-relative paths downstream.
type Chapter struct {
	Name        string        `json:"name"`
	Content     string        `json:"content"`
	Number      SectionNumber `json:"number"`
	SubItems    []BookItem    `json:"sub_items"`
	Path        *string       `json:"path"`
	SourcePath  *string       `json:"source_path"`
	ParentNames []string      `json:"parent_names"`
}

// NewChapter builds a chapter leaf located at path with the given ancestor
// section names. Both path and source_path start out equal, matching the
// host's own constructor; callers rewrite them as needed.
func NewChapter(name, content, path string, parentNames []string) *Chapter {
	p, sp := path, path
	return &Chapter{
		Name:        name,
		Content:     content,
		SubItems:    []BookItem{},
		Path:        &p,
		SourcePath:  &sp,
		ParentNames: parentNames,
	}
}

// MarshalJSON encodes the chapter with empty slices in place of nil ones.
// The host deserializes sub_items and parent_names as plain vectors, so
// null is not a legal encoding for either.
func (c Chapter) MarshalJSON() ([]byte, error) {
	type alias Chapter
	a := alias(c)
	if a.SubItems == nil {
		a.SubItems = []BookItem{}
	}
	if a.ParentNames == nil {
		a.ParentNames = []string{}
	}
	return json.Marshal(a)
}

// BookItem is one entry of the book tree: a chapter, a part title, or a
// separator. Exactly one of the three is set.
//
// The wire form is the host's externally tagged enum:
//
//	{"Chapter": {...}} | {"PartTitle": "..."} | "Separator"
type BookItem struct {
	Chapter   *Chapter
	PartTitle *string
	Separator bool
}

// ChapterItem wraps a chapter as a book item.
func ChapterItem(c *Chapter) BookItem {
	return BookItem{Chapter: c}
}

// MarshalJSON encodes the item in the host's externally tagged enum form.
func (it BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{"Chapter": it.Chapter})
	case it.PartTitle != nil:
		return json.Marshal(map[string]string{"PartTitle": *it.PartTitle})
	case it.Separator:
		return json.Marshal("Separator")
	}
	return nil, errors.New("mdbook: book item has no variant set")
}

// UnmarshalJSON decodes either the bare "Separator" string or a
// single-variant object.
func (it *BookItem) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Separator" {
			return fmt.Errorf("mdbook: unknown book item variant %q", tag)
		}
		*it = BookItem{Separator: true}
		return nil
	}

	var obj struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("mdbook: decode book item: %w", err)
	}
	switch {
	case obj.Chapter != nil:
		*it = BookItem{Chapter: obj.Chapter}
	case obj.PartTitle != nil:
		*it = BookItem{PartTitle: obj.PartTitle}
	default:
		return errors.New("mdbook: book item has no recognized variant")
	}
	return nil
}

// Book is the host's full document tree. Sections hold the top-level
// items in display order.
type Book struct {
	Sections []BookItem `json:"sections"`
}

// PushItem appends an item to the end of the book's top level. Existing
// items are never reordered or removed.
func (b *Book) PushItem(item BookItem) {
	b.Sections = append(b.Sections, item)
}

// EachChapter visits every chapter in the book depth-first, sub-items
// included.
func (b *Book) EachChapter(fn func(*Chapter)) {
	var walk func(items []BookItem)
	walk = func(items []BookItem) {
		for i := range items {
			if ch := items[i].Chapter; ch != nil {
				fn(ch)
				walk(ch.SubItems)
			}
		}
	}
	walk(b.Sections)
}

// MarshalJSON encodes the book with the __non_exhaustive marker the host's
// serde model emits, so the answer round-trips byte-compatibly.
func (b Book) MarshalJSON() ([]byte, error) {
	aux := struct {
		Sections      []BookItem  `json:"sections"`
		NonExhaustive interface{} `json:"__non_exhaustive"`
	}{Sections: b.Sections}
	if aux.Sections == nil {
		aux.Sections = []BookItem{}
	}
	return json.Marshal(aux)
}
