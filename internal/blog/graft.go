package blog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/harrison/mdbook-blog/internal/mdbook"
)

// frontmatter is the subset of a post's YAML header this preprocessor
// understands. The publication date is never read from here: the filename
// is the single source of ordering truth.
type frontmatter struct {
	Title string `yaml:"title"`
}

// chapterFromPost reads a post's file and converts it into a chapter
// filed under the post's parent section. The chapter title is taken from
// the frontmatter when present, else from the first Markdown heading,
// else from the post name with hyphens spaced out. The returned chapter
// still carries the post's walk path; the caller rebases it.
//
// Read failures are fatal: a file that was accepted during the walk but
// cannot be read anymore means the source tree changed under the build.
func chapterFromPost(post Post) (*mdbook.Chapter, error) {
	raw, err := os.ReadFile(post.Path)
	if err != nil {
		return nil, fmt.Errorf("read post %s: %w", post.Path, err)
	}

	fm, body := splitFrontmatter(raw)

	title := fm.Title
	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		title = strings.ReplaceAll(post.Name, "-", " ")
	}

	return mdbook.NewChapter(title, string(body), post.Path, []string{post.ParentName}), nil
}

// splitFrontmatter separates a leading YAML block delimited by --- lines
// from the post body. Posts without such a block, or whose block is not
// valid YAML, keep their full content as the body.
func splitFrontmatter(data []byte) (frontmatter, []byte) {
	const delim = "---"
	var fm frontmatter

	trimmed := bytes.TrimLeft(data, "\r\n")
	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return fm, data
	}
	rest := trimmed[len(delim):]
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		return fm, data
	}

	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return frontmatter{}, data
	}
	body := rest[end+1+len(delim):]
	return fm, bytes.TrimLeft(body, "\r\n")
}

// mdParser is shared by every graft in a run.
var mdParser = goldmark.New()

// firstHeading returns the flattened text of the first heading in the
// Markdown source, or "" when the source has none.
func firstHeading(source []byte) string {
	doc := mdParser.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = headingText(heading, source)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

// headingText flattens a heading's inline tree to plain text, descending
// through emphasis and other inline wrappers.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	var collect func(ast.Node)
	collect = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
				continue
			}
			collect(c)
		}
	}
	collect(n)
	return buf.String()
}

// rebasePath rewrites path to be relative to root. Every grafted post was
// discovered under the posts directory inside root, so failure here means
// the collection contract was broken and the run must not continue.
func rebasePath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("internal: post path %q is not under source root %q", path, root)
	}
	return rel, nil
}
