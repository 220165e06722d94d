package postengine

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/pointlessduffin-21/duffin-blogs/internal/blogclient"
)

// applyFilter derives the visible sequence from the full post list, keeping
// server order.
func applyFilter(posts []blogclient.Post, f Filter) []blogclient.Post {
	switch f.Kind {
	case FilterQuery:
		return matchQuery(posts, f.Value)
	case FilterTag:
		return matchTag(posts, f.Value)
	default:
		return posts
	}
}

// matchQuery keeps posts whose title, content, or any tag contains the query
// as a case-insensitive substring.
func matchQuery(posts []blogclient.Post, query string) []blogclient.Post {
	q := strings.ToLower(query)

	matched := []blogclient.Post{}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
			matched = append(matched, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				matched = append(matched, p)
				break
			}
		}
	}

	return matched
}

// matchTag keeps posts whose tag set contains the tag exactly. Tag matching
// is case-sensitive, unlike the free-text search.
func matchTag(posts []blogclient.Post, tag string) []blogclient.Post {
	matched := []blogclient.Post{}
	for _, p := range posts {
		if p.HasTag(tag) {
			matched = append(matched, p)
		}
	}

	return matched
}

// collectTags returns the union of every post's tag set, deduplicated and
// sorted lexicographically.
func collectTags(posts []blogclient.Post) []string {
	seen := make(map[string]struct{})
	for _, p := range posts {
		for _, tag := range p.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := maps.Keys(seen)
	sort.Strings(tags)

	return tags
}
