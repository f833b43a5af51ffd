// Package i18n looks up localized UI strings.
//
// Catalogs are TOML files embedded from locales/, one per locale, mapping
// message keys to text with {name} placeholders.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// DefaultLocale is the fallback catalog.
const DefaultLocale = "en-US"

//go:embed locales/*.toml
var localeFS embed.FS

// ErrUnsupportedLocale is returned by SetLocale when no catalog matches.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Catalog holds every embedded locale and the active one.
type Catalog struct {
	mu       sync.RWMutex
	locale   string
	locales  []string // DefaultLocale first, then sorted
	messages map[string]map[string]string
	matcher  language.Matcher
}

// New loads the embedded catalogs and selects the locale closest to
// preferred. An empty or unknown preference selects DefaultLocale.
func New(preferred string) (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}

	c := &Catalog{messages: make(map[string]map[string]string)}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".toml")
		data, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", name, err)
		}
		msgs := make(map[string]string)
		if _, err := toml.Decode(string(data), &msgs); err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", name, err)
		}
		c.messages[name] = msgs
		c.locales = append(c.locales, name)
	}
	if _, ok := c.messages[DefaultLocale]; !ok {
		return nil, fmt.Errorf("missing %s catalog", DefaultLocale)
	}

	sort.Slice(c.locales, func(i, j int) bool {
		if c.locales[i] == DefaultLocale || c.locales[j] == DefaultLocale {
			return c.locales[i] == DefaultLocale
		}
		return c.locales[i] < c.locales[j]
	})

	tags := make([]language.Tag, len(c.locales))
	for i, l := range c.locales {
		tags[i] = language.MustParse(l)
	}
	c.matcher = language.NewMatcher(tags)

	c.locale = DefaultLocale
	if preferred != "" {
		if loc, ok := c.match(preferred); ok {
			c.locale = loc
		}
	}
	return c, nil
}

// match finds the catalog for a locale such as "fr", "de-AT" or "es_ES".
func (c *Catalog) match(locale string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", false
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return c.locales[idx], true
}

// Locale returns the active locale name.
func (c *Catalog) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// Locales lists the available locales, DefaultLocale first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// SetLocale switches the active catalog.
func (c *Catalog) SetLocale(locale string) error {
	loc, ok := c.match(locale)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	c.mu.Lock()
	c.locale = loc
	c.mu.Unlock()
	return nil
}

// Next switches to the following locale, wrapping around, and returns it.
func (c *Catalog) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.locales {
		if l == c.locale {
			c.locale = c.locales[(i+1)%len(c.locales)]
			break
		}
	}
	return c.locale
}

// Get returns the message for key in the active locale with {name}
// placeholders replaced from args. Missing keys fall back to DefaultLocale
// and then to "[key]".
func (c *Catalog) Get(key string, args map[string]any) string {
	c.mu.RLock()
	msg, ok := c.messages[c.locale][key]
	c.mu.RUnlock()
	if !ok {
		msg, ok = c.messages[DefaultLocale][key]
	}
	if !ok {
		return "[" + key + "]"
	}
	if len(args) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(args)*2)
	for name, v := range args {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
