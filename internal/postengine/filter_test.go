package postengine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pointlessduffin-21/duffin-blogs/internal/blogclient"
)

func TestApplyFilter(t *testing.T) {
	posts := samplePosts()

	testCases := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{name: "none is identity", filter: Filter{}, expected: []string{"1", "2", "3"}},
		{name: "query", filter: Filter{Kind: FilterQuery, Value: "CATS"}, expected: []string{"1"}},
		{name: "tag", filter: Filter{Kind: FilterTag, Value: "pets"}, expected: []string{"1", "2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids := []string{}
			for _, p := range applyFilter(posts, tc.filter) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestMatchQueryPreservesOrder(t *testing.T) {
	posts := []blogclient.Post{
		{ID: "b", Title: "go second"},
		{ID: "a", Title: "go first"},
	}

	matched := matchQuery(posts, "go")
	assert.Equal(t, "b", matched[0].ID)
	assert.Equal(t, "a", matched[1].ID)
}

func TestCollectTags(t *testing.T) {
	assert.Equal(t, []string{}, collectTags(nil))

	posts := []blogclient.Post{
		{Tags: []string{"zebra", "alpha"}},
		{Tags: []string{"alpha", "mid"}},
		{Tags: nil},
	}
	assert.Equal(t, []string{"alpha", "mid", "zebra"}, collectTags(posts))
}
