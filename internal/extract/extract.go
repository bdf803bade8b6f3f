// Package extract derives display metadata (title, subtitle) from the HTML of a post.
package extract

import (
	"strings"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/post"
)

const (
	// MaxSubtitle is the maximum subtitle length in characters, marker included.
	MaxSubtitle = 200
	// Ellipsis marks a truncated subtitle.
	Ellipsis = "..."
)

// Defaults returns the extractors applied to every post, in order.
func Defaults() []post.Extractor {
	return []post.Extractor{
		{Name: post.FieldTitle, Fn: Title},
		{Name: post.FieldSubtitle, Fn: Subtitle},
	}
}

// Title returns the inner HTML of the first <h1>, or the item's filename when
// the post has no <h1>.
func Title(it *post.Item) (string, error) {
	inner, found, err := FirstElement(it.HTML, "h1")
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryContent, "failed to parse post HTML").Build()
	}
	if !found {
		return it.Filename, nil
	}
	return inner, nil
}

// Subtitle returns the inner HTML of the first <p>, truncated to MaxSubtitle
// characters. A post without any paragraph has an empty subtitle.
func Subtitle(it *post.Item) (string, error) {
	inner, found, err := FirstElement(it.HTML, "p")
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryContent, "failed to parse post HTML").Build()
	}
	if !found {
		return "", nil
	}
	return Truncate(inner, MaxSubtitle), nil
}

// Truncate shortens s to max characters (runes). Longer strings keep their
// first max-len(Ellipsis) characters followed by Ellipsis. The cut backs off
// so it never ends inside a character reference or a tag.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	keep := max - len(Ellipsis)
	if keep < 0 {
		keep = 0
	}
	return cutAtBoundary(string(r[:keep])) + Ellipsis
}

func cutAtBoundary(s string) string {
	if i := strings.LastIndexByte(s, '&'); i >= 0 && !strings.ContainsRune(s[i:], ';') {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '<'); i >= 0 && !strings.ContainsRune(s[i:], '>') {
		s = s[:i]
	}
	return s
}
