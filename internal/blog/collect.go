package blog

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// postExt is the extension candidate files must carry, matched
// case-sensitively.
const postExt = ".md"

// CollectPosts recursively walks dir and returns a Post for every file
// whose name carries both a valid date prefix and the .md extension.
//
// Anything that cannot become a post is skipped without failing the walk:
// directories and other extensions silently, names without a valid date
// with an error log, unreadable entries with a warning. A missing posts
// directory yields an empty result. Posts come back in walk order;
// callers decide the final ordering.
func CollectPosts(dir, parentName string, log Logger) []Post {
	var posts []Post
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.LogWarn(fmt.Sprintf("Skipping %s: %v", path, walkErr))
			return nil
		}
		if d.IsDir() || filepath.Ext(d.Name()) != postExt {
			return nil
		}

		log.LogDebug(fmt.Sprintf("Extracting date from %s", d.Name()))
		date, err := ExtractDate(d.Name())
		if err != nil {
			log.LogError(fmt.Sprintf("Ignoring %s: %v", path, err))
			return nil
		}

		posts = append(posts, Post{
			Path:       path,
			Date:       date,
			Name:       PostName(d.Name()),
			ParentName: parentName,
		})
		return nil
	})
	if err != nil {
		log.LogWarn(fmt.Sprintf("Walking %s: %v", dir, err))
	}
	return posts
}
