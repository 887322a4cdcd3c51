package blog

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/harrison/mdbook-blog/internal/mdbook"
)

// SortBy selects the ordering applied to collected posts. It is a closed
// enumeration: the sorter switches over it exhaustively, so a new
// strategy cannot be added without every call site seeing it.
type SortBy int

const (
	// SortNewest orders posts most recent first.
	SortNewest SortBy = iota
	// SortOldest orders posts oldest first.
	SortOldest
	// SortNameAZ orders posts by name, ascending lexicographic.
	SortNameAZ
	// SortNameZA orders posts by name, descending lexicographic.
	SortNameZA
)

// String returns the configuration spelling of the strategy.
func (s SortBy) String() string {
	switch s {
	case SortNewest:
		return "newest"
	case SortOldest:
		return "oldest"
	case SortNameAZ:
		return "name-a-z"
	case SortNameZA:
		return "name-z-a"
	default:
		return fmt.Sprintf("SortBy(%d)", int(s))
	}
}

// ParseSortBy maps a configuration value onto its strategy.
func ParseSortBy(value string) (SortBy, error) {
	switch value {
	case "newest":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	case "name-a-z":
		return SortNameAZ, nil
	case "name-z-a":
		return SortNameZA, nil
	}
	return SortNewest, fmt.Errorf("unknown sort-by value %q (expected newest, oldest, name-a-z or name-z-a)", value)
}

// UnmarshalJSON decodes the kebab-case configuration spelling.
func (s *SortBy) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("sort-by must be a string: %w", err)
	}
	parsed, err := ParseSortBy(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Default configuration values.
const (
	DefaultDirectory   = "posts"
	DefaultChapterName = "Posts"
)

// Config is the [preprocessor.blog] table of book.toml, as delivered over
// the preprocessor protocol. It is resolved once per run and immutable
// afterwards.
type Config struct {
	// Directory is the subdirectory of the book source scanned for
	// posts.
	Directory string `json:"directory"`

	// Future includes posts dated after the current date. Off by
	// default: a dated-ahead draft stays out of the book until its day
	// comes.
	Future bool `json:"future"`

	// ChapterName is the section name grafted posts are filed under.
	ChapterName string `json:"chapter-name"`

	// SortBy is the ordering applied to the collected posts.
	SortBy SortBy `json:"sort-by"`
}

// DefaultConfig returns a Config with the documented default values.
func DefaultConfig() *Config {
	return &Config{
		Directory:   DefaultDirectory,
		Future:      false,
		ChapterName: DefaultChapterName,
		SortBy:      SortNewest,
	}
}

// Validate validates resolved configuration values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Directory, validation.Required, validation.By(relativePath)),
		validation.Field(&c.ChapterName, validation.Required),
	)
}

// relativePath rejects absolute directories: the posts directory is
// resolved against the book's source root.
func relativePath(value interface{}) error {
	s, _ := value.(string)
	if filepath.IsAbs(s) {
		return errors.New("must be relative to the book source directory")
	}
	return nil
}

// ResolveConfig materializes the preprocessor's configuration from the
// build context. A missing table yields defaults. A malformed table —
// wrong value types, an unrecognized sort-by, values that fail validation
// — is logged and also yields defaults: configuration problems never
// abort a build. Unknown keys are ignored.
func ResolveConfig(ctx *mdbook.PreprocessorContext, name string, log Logger) *Config {
	raw := ctx.PreprocessorConfig(name)
	if raw == nil {
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, cfg); err != nil {
		log.LogError(fmt.Sprintf("The [preprocessor.%s] table in book.toml is invalid, falling back to defaults: %v", name, err))
		return DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		log.LogError(fmt.Sprintf("The [preprocessor.%s] table in book.toml is invalid, falling back to defaults: %v", name, err))
		return DefaultConfig()
	}
	return cfg
}
