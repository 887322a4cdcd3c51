// Package blog grafts a directory of date-named Markdown files into an
// mdBook as chapters.
//
// Posts live under a configurable subdirectory of the book source and are
// named YYYY-MM-DD-anything.md. The date prefix orders them, the
// remainder names them. Each preprocessing run collects the posts,
// filters and orders them per configuration, and appends one chapter per
// post to the book it was handed.
package blog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/harrison/mdbook-blog/internal/mdbook"
)

// Name is the preprocessor's registered name: the [preprocessor.blog]
// table of book.toml configures it.
const Name = "blog"

// rendererHTML is the only renderer whose output this preprocessor
// supports.
const rendererHTML = "html"

// Logger is the logging surface the preprocessor needs. Both
// logger.ConsoleLogger and logger.NoOpLogger satisfy it. Everything is
// logged away from stdout, which belongs to the book protocol.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Preprocessor collects, orders and grafts blog posts into a book.
type Preprocessor struct {
	log Logger
	now func() time.Time
}

// New creates a Preprocessor logging through log.
func New(log Logger) *Preprocessor {
	return &Preprocessor{
		log: log,
		now: time.Now,
	}
}

// SupportsRenderer reports whether the given renderer's output may be
// preprocessed. Only mdBook's HTML renderer is.
func (p *Preprocessor) SupportsRenderer(renderer string) bool {
	return renderer == rendererHTML
}

// Run executes one preprocessing pass: resolve configuration, collect the
// posts directory, filter and order the posts, and graft each one into
// book under the configured chapter name. The book is mutated in place
// and returned for the caller to serialize.
//
// Problems with individual directory entries are logged and skipped. A
// post that cannot be read during grafting aborts the run, as does a
// post path that turns out not to live under the book source.
func (p *Preprocessor) Run(ctx *mdbook.PreprocessorContext, book *mdbook.Book) (*mdbook.Book, error) {
	cfg := ResolveConfig(ctx, Name, p.log)

	srcDir := ctx.SourceRoot()
	postsDir := filepath.Join(srcDir, cfg.Directory)
	p.log.LogInfo(fmt.Sprintf("Collecting posts from %s", postsDir))

	posts := CollectPosts(postsDir, cfg.ChapterName, p.log)
	if !cfg.Future {
		posts = p.dropFuturePosts(posts)
	}
	SortPosts(posts, cfg.SortBy)
	p.log.LogInfo(fmt.Sprintf("Collected %d posts, ordered by %s", len(posts), cfg.SortBy))

	for _, post := range posts {
		chapter, err := chapterFromPost(post)
		if err != nil {
			return nil, err
		}
		rel, err := rebasePath(srcDir, post.Path)
		if err != nil {
			return nil, err
		}
		src, dst := rel, rel
		chapter.SourcePath = &src
		chapter.Path = &dst

		p.log.LogDebug(fmt.Sprintf("Grafting %s under %q", rel, post.ParentName))
		book.PushItem(mdbook.ChapterItem(chapter))
	}

	book.EachChapter(func(ch *mdbook.Chapter) {
		p.log.LogTrace(fmt.Sprintf("Book chapter: %q", ch.Name))
	})
	return book, nil
}

// dropFuturePosts filters out posts dated strictly after the current
// date. Posts dated today stay in.
func (p *Preprocessor) dropFuturePosts(posts []Post) []Post {
	today := p.now().UTC().Truncate(24 * time.Hour)
	kept := posts[:0]
	for _, post := range posts {
		if post.Date.After(today) {
			p.log.LogInfo(fmt.Sprintf("Skipping future-dated post %s (%s)", post.Path, post.Date.Format(dateLayout)))
			continue
		}
		kept = append(kept, post)
	}
	return kept
}
