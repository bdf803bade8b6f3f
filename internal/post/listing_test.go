package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

func names(items []*Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Filename)
	}
	return out
}

func TestListing_DescendingByFilename(t *testing.T) {
	items := []*Item{{Filename: "b"}, {Filename: "a"}, {Filename: "c"}}

	got := Listing(items)
	assert.Equal(t, []string{"c", "b", "a"}, names(got))
	assert.Equal(t, []string{"b", "a", "c"}, names(items), "input must not be reordered")
}

func TestListing_StableOnTies(t *testing.T) {
	first := &Item{Filename: "same", Path: "one"}
	second := &Item{Filename: "same", Path: "two"}
	items := []*Item{{Filename: "a"}, first, second, {Filename: "z"}}

	got := Listing(items)
	require.Len(t, got, 4)
	assert.Same(t, first, got[1])
	assert.Same(t, second, got[2])
}

func TestListing_DatePrefixedNewestFirst(t *testing.T) {
	items := []*Item{{Filename: "2023-05-01-old"}, {Filename: "2024-02-10-new"}, {Filename: "2023-12-24-mid"}}
	assert.Equal(t, []string{"2024-02-10-new", "2023-12-24-mid", "2023-05-01-old"}, names(Listing(items)))
}

func TestListing_Empty(t *testing.T) {
	assert.Empty(t, Listing(nil))
}

func TestViews(t *testing.T) {
	views := Views([]*Item{{Filename: "a", Href: "site/a.html"}})
	require.Len(t, views, 1)
	assert.Equal(t, "site/a.html", views[0]["href"])
}

func TestCheckCollisions(t *testing.T) {
	ok := []*Item{{Path: "posts/a.md", Output: "site/a.html"}, {Path: "posts/b.md", Output: "site/b.html"}}
	require.NoError(t, CheckCollisions(ok))

	clash := append(ok, &Item{Path: "drafts/a.md", Output: "site/a.html"})
	err := CheckCollisions(clash)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "drafts/a.md")
}
