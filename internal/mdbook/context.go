package mdbook

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
)

// PreprocessorContext is everything mdBook tells a preprocessor about the
// build: the book root, the parsed book.toml, the renderer being run, and
// the mdBook version doing the running.
type PreprocessorContext struct {
	Root          string `json:"root"`
	Config        Config `json:"config"`
	Renderer      string `json:"renderer"`
	MdBookVersion string `json:"mdbook_version"`
}

// Config is the book.toml configuration as delivered over the protocol.
// Preprocessor tables are kept raw; each preprocessor decodes its own.
type Config struct {
	Book         BookConfig                 `json:"book"`
	Preprocessor map[string]json.RawMessage `json:"preprocessor"`
}

// BookConfig is the [book] table of book.toml.
type BookConfig struct {
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Language     string   `json:"language"`
	Multilingual bool     `json:"multilingual"`
	Src          string   `json:"src"`
}

// SourceRoot resolves the directory all chapter paths are expressed
// relative to. mdBook defaults the source directory to "src" when the
// [book] table leaves it unset.
func (ctx *PreprocessorContext) SourceRoot() string {
	src := ctx.Config.Book.Src
	if src == "" {
		src = "src"
	}
	return filepath.Join(ctx.Root, src)
}

// PreprocessorConfig returns the raw [preprocessor.<name>] table, or nil
// when book.toml has no such table.
func (ctx *PreprocessorContext) PreprocessorConfig(name string) json.RawMessage {
	return ctx.Config.Preprocessor[name]
}

// ParseInput decodes the [context, book] message mdBook writes to a
// preprocessor's stdin.
func ParseInput(r io.Reader) (*PreprocessorContext, *Book, error) {
	var msg [2]json.RawMessage
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		return nil, nil, fmt.Errorf("mdbook: decode preprocessor input: %w", err)
	}
	if isNullElement(msg[0]) || isNullElement(msg[1]) {
		return nil, nil, fmt.Errorf("mdbook: preprocessor input must be a [context, book] pair")
	}

	var ctx PreprocessorContext
	if err := json.Unmarshal(msg[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("mdbook: decode preprocessor context: %w", err)
	}
	var book Book
	if err := json.Unmarshal(msg[1], &book); err != nil {
		return nil, nil, fmt.Errorf("mdbook: decode book: %w", err)
	}
	return &ctx, &book, nil
}

// isNullElement reports whether a decoded array element is absent or the
// literal null, neither of which can stand in for the context or book.
func isNullElement(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
