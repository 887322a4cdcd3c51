package blog

import "sort"

// SortPosts orders posts in place according to the given strategy. The
// sort is stable: posts comparing equal keep their input order, so a
// given directory always produces the same chapter sequence.
func SortPosts(posts []Post, by SortBy) {
	switch by {
	case SortNewest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[j].Date.Before(posts[i].Date)
		})
	case SortOldest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Date.Before(posts[j].Date)
		})
	case SortNameAZ:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Name < posts[j].Name
		})
	case SortNameZA:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[j].Name < posts[i].Name
		})
	}
}
