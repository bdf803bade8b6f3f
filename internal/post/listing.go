package post

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

// Listing returns items ordered by Filename, descending. The sort is stable so
// equal filenames keep their encounter order. items is not modified.
func Listing(items []*Item) []*Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b *Item) int {
		return strings.Compare(b.Filename, a.Filename)
	})
	return out
}

// Views maps items to their template representation.
func Views(items []*Item) []map[string]any {
	views := make([]map[string]any, 0, len(items))
	for _, it := range items {
		views = append(views, it.View())
	}
	return views
}

// CheckCollisions fails when two items would be written to the same output file.
func CheckCollisions(items []*Item) error {
	seen := make(map[string]string, len(items))
	for _, it := range items {
		if prev, ok := seen[it.Output]; ok {
			return errors.ValidationError("two posts share one output file").
				WithContext("output", it.Output).
				WithContext("first", prev).
				WithContext("second", it.Path).
				Build()
		}
		seen[it.Output] = it.Path
	}
	return nil
}
