package locale

import (
	"path"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/engine/macro"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

const imageMarker = "<img src"

// Resolver maps a locale hash to its localized text, or "" when the hash is unknown
type Resolver interface {
	ResolveLocale(hash uint64) string
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(hash uint64) string

// ResolveLocale implements Resolver
func (f ResolverFunc) ResolveLocale(hash uint64) string {
	return f(hash)
}

// Table is an in-memory Resolver
type Table map[uint64]string

// ResolveLocale implements Resolver
func (t Table) ResolveLocale(hash uint64) string {
	return t[hash]
}

// Expand rewrites every &name& macro in template with its localized text.
//
// Localized text that embeds an image reference is replaced by the matching
// icon token when the image is known. Expansion stops quietly at an unpaired
// '&'. It returns the text expanded so far and a FailedPrecondition error when
// a pass makes no progress or maxPasses is reached.
func Expand(template string, resolver Resolver, set *icons.Set, maxPasses int) (string, error) {
	text := template
	for pass := 0; ; pass++ {
		m, ok := macro.Next(text, macro.Locale)
		if !ok {
			return text, nil
		}
		if pass >= maxPasses {
			return text, errors.FailedPreconditionf("locale expansion exceeded %d passes", maxPasses)
		}

		resolved := resolveText(resolver.ResolveLocale(Hash(m.Body)), set)

		next := macro.Replace(text, m, resolved)
		if next == text {
			return text, errors.FailedPreconditionf("locale macro %q resolves to itself", m.Body)
		}
		text = next
	}
}

func resolveText(text string, set *icons.Set) string {
	if !strings.Contains(text, imageMarker) {
		return text
	}

	base, ok := imageBase(text)
	if !ok {
		return text
	}

	if token, ok := set.Image(base); ok {
		return token
	}
	return text
}

// imageBase extracts the file name, without extension, of the first quoted
// path following an <img src marker
func imageBase(text string) (string, bool) {
	start := strings.Index(text, imageMarker)
	rest := text[start+len(imageMarker):]

	open := strings.IndexAny(rest, `'"`)
	if open < 0 {
		return "", false
	}
	quote := rest[open]
	rest = rest[open+1:]

	end := strings.IndexByte(rest, quote)
	if end < 0 {
		return "", false
	}

	base := path.Base(rest[:end])
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	return base, base != "" && base != "/"
}
