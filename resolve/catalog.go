// Package resolve provides text.MeasureResolver and text.RenderResolver
// strategies: message catalogs that localize keys, and markup that embeds
// QR codes and named images between text runs.
package resolve

import (
	"context"
	"sort"

	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/text"
)

// Catalog holds messages per language and picks the closest supported
// language for a requested one.
type Catalog struct {
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// NewCatalog builds a catalog from messages keyed by language. fallback is
// used when no language matches; it need not have its own messages.
func NewCatalog(fallback language.Tag, messages map[language.Tag]map[string]string) *Catalog {
	c := &Catalog{
		tags:     []language.Tag{fallback},
		messages: []map[string]string{messages[fallback]},
	}
	others := make([]language.Tag, 0, len(messages))
	for tag := range messages {
		if tag != fallback {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	for _, tag := range others {
		c.tags = append(c.tags, tag)
		c.messages = append(c.messages, messages[tag])
	}
	c.matcher = language.NewMatcher(c.tags)
	return c
}

// Match returns the supported language closest to lang.
func (c *Catalog) Match(lang language.Tag) language.Tag {
	return c.tags[c.index(lang)]
}

// Languages returns the supported languages, fallback first.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Lookup returns the message for key in the language closest to lang,
// falling back to the fallback language.
func (c *Catalog) Lookup(lang language.Tag, key string) (string, bool) {
	i := c.index(lang)
	if msg, ok := c.messages[i][key]; ok {
		return msg, true
	}
	msg, ok := c.messages[0][key]
	return msg, ok
}

func (c *Catalog) index(lang language.Tag) int {
	_, i, conf := c.matcher.Match(lang)
	if conf == language.No {
		return 0
	}
	return i
}

// Localizer resolves message keys for one language. Text that is not a
// known key is returned unchanged.
type Localizer struct {
	Catalog  *Catalog
	Language language.Tag
}

var _ text.MeasureResolver = (*Localizer)(nil)

// Localizer returns a resolver for lang.
func (c *Catalog) Localizer(lang language.Tag) *Localizer {
	return &Localizer{Catalog: c, Language: lang}
}

func (l *Localizer) ResolveMeasure(_ context.Context, s string, _ text.Scale) (string, error) {
	if msg, ok := l.Catalog.Lookup(l.Language, s); ok {
		return msg, nil
	}
	return s, nil
}
