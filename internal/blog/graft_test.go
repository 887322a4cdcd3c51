package blog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "no frontmatter",
			input:     "# Hi\n\nbody\n",
			wantTitle: "",
			wantBody:  "# Hi\n\nbody\n",
		},
		{
			name:      "title frontmatter",
			input:     "---\ntitle: Custom Title\n---\n\n# Hi\n",
			wantTitle: "Custom Title",
			wantBody:  "# Hi\n",
		},
		{
			name:      "other keys ignored",
			input:     "---\nauthor: someone\ntags: [a, b]\n---\nbody\n",
			wantTitle: "",
			wantBody:  "body\n",
		},
		{
			name:      "leading blank lines",
			input:     "\n\n---\ntitle: Padded\n---\nbody\n",
			wantTitle: "Padded",
			wantBody:  "body\n",
		},
		{
			name:      "empty block",
			input:     "---\n---\nbody\n",
			wantTitle: "",
			wantBody:  "body\n",
		},
		{
			name:      "unterminated block keeps everything",
			input:     "---\ntitle: Lost\n",
			wantTitle: "",
			wantBody:  "---\ntitle: Lost\n",
		},
		{
			name:      "invalid yaml keeps everything",
			input:     "---\ntitle: [broken\n---\nbody\n",
			wantTitle: "",
			wantBody:  "---\ntitle: [broken\n---\nbody\n",
		},
		{
			name:      "thematic break alone",
			input:     "---",
			wantTitle: "",
			wantBody:  "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := splitFrontmatter([]byte(tt.input))
			if fm.Title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, fm.Title)
			}
			if string(body) != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, string(body))
			}
		})
	}
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "atx heading", source: "# Hello World\n\nbody\n", want: "Hello World"},
		{name: "heading after paragraph", source: "intro text\n\n## Later Heading\n", want: "Later Heading"},
		{name: "setext heading", source: "Underlined\n==========\n", want: "Underlined"},
		{name: "emphasis in heading", source: "# Hello *World*\n", want: "Hello World"},
		{name: "code span in heading", source: "# Using `go test`\n", want: "Using go test"},
		{name: "no heading", source: "just a paragraph\n", want: ""},
		{name: "hash without space", source: "#not-a-heading\n", want: ""},
		{name: "empty source", source: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstHeading([]byte(tt.source)); got != tt.want {
				t.Errorf("firstHeading(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestChapterFromPost(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, content string) Post {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write post: %v", err)
		}
		date, err := ExtractDate(name)
		if err != nil {
			t.Fatalf("bad test filename %q: %v", name, err)
		}
		return Post{Path: path, Date: date, Name: PostName(name), ParentName: "Posts"}
	}

	t.Run("frontmatter title wins", func(t *testing.T) {
		post := write("2024-01-01-custom.md", "---\ntitle: Release Notes\n---\n# Ignored Heading\n")
		ch, err := chapterFromPost(post)
		if err != nil {
			t.Fatalf("chapterFromPost failed: %v", err)
		}
		if ch.Name != "Release Notes" {
			t.Errorf("expected title %q, got %q", "Release Notes", ch.Name)
		}
		if strings.Contains(ch.Content, "title: Release Notes") {
			t.Errorf("expected frontmatter stripped from content, got %q", ch.Content)
		}
		if len(ch.ParentNames) != 1 || ch.ParentNames[0] != "Posts" {
			t.Errorf("expected parent names [Posts], got %v", ch.ParentNames)
		}
	})

	t.Run("heading title", func(t *testing.T) {
		post := write("2024-01-02-heading.md", "# From The Text\n\nbody\n")
		ch, err := chapterFromPost(post)
		if err != nil {
			t.Fatalf("chapterFromPost failed: %v", err)
		}
		if ch.Name != "From The Text" {
			t.Errorf("expected title %q, got %q", "From The Text", ch.Name)
		}
		if ch.Content != "# From The Text\n\nbody\n" {
			t.Errorf("expected content untouched, got %q", ch.Content)
		}
	})

	t.Run("name fallback", func(t *testing.T) {
		post := write("2024-01-03-plain-text-note.md", "no headings here\n")
		ch, err := chapterFromPost(post)
		if err != nil {
			t.Fatalf("chapterFromPost failed: %v", err)
		}
		if ch.Name != "plain text note" {
			t.Errorf("expected title %q, got %q", "plain text note", ch.Name)
		}
	})

	t.Run("paths start as the walk path", func(t *testing.T) {
		post := write("2024-01-04-paths.md", "# Paths\n")
		ch, err := chapterFromPost(post)
		if err != nil {
			t.Fatalf("chapterFromPost failed: %v", err)
		}
		if ch.Path == nil || *ch.Path != post.Path {
			t.Errorf("expected path %q, got %v", post.Path, ch.Path)
		}
		if ch.SourcePath == nil || *ch.SourcePath != post.Path {
			t.Errorf("expected source path %q, got %v", post.Path, ch.SourcePath)
		}
	})

	t.Run("unreadable post is an error", func(t *testing.T) {
		post := Post{Path: filepath.Join(tmpDir, "absent.md"), Name: "absent", ParentName: "Posts"}
		if _, err := chapterFromPost(post); err == nil {
			t.Error("expected an error for an unreadable post")
		}
	})
}

func TestRebasePath(t *testing.T) {
	root := filepath.Join("book", "src")

	t.Run("inside root", func(t *testing.T) {
		original := filepath.Join(root, "posts", "2024-01-01-a.md")
		got, err := rebasePath(root, original)
		if err != nil {
			t.Fatalf("rebasePath failed: %v", err)
		}
		if want := filepath.Join("posts", "2024-01-01-a.md"); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
		// Joining the result back onto the root restores the walk path
		if rejoined := filepath.Join(root, got); rejoined != original {
			t.Errorf("expected round trip to %q, got %q", original, rejoined)
		}
	})

	t.Run("outside root", func(t *testing.T) {
		if _, err := rebasePath(root, filepath.Join("book", "other", "a.md")); err == nil {
			t.Error("expected an error for a path outside the root")
		}
	})

	t.Run("parent of root", func(t *testing.T) {
		if _, err := rebasePath(root, "book"); err == nil {
			t.Error("expected an error for the root's parent")
		}
	})
}
