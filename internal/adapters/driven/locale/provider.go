// Package locale provides locale-aware collation and number parsing
// backed by golang.org/x/text.
package locale

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
	"github.com/shawnhcorey/Field-Sort/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.LocaleProvider = (*Provider)(nil)

// EnvVars are consulted in order for the active locale.
var EnvVars = []string{"LC_ALL", "LC_COLLATE", "LANG"}

// Options configures a Provider.
type Options struct {
	// Override replaces the environment locale when non-empty.
	// "none" disables the active locale.
	Override string

	// Extra locales are offered after the active one.
	Extra []domain.Locale

	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// Provider resolves locales to collations.
type Provider struct {
	active  domain.Locale
	locales []domain.Locale

	mu      sync.Mutex
	tags    map[domain.Locale]language.Tag
	formats map[domain.Locale]*numberFormat
}

// NewProvider determines the active locale and the selectable set.
// An active locale that x/text cannot parse is dropped with a warning.
func NewProvider(opts Options) *Provider {
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	p := &Provider{
		tags:    make(map[domain.Locale]language.Tag),
		formats: make(map[domain.Locale]*numberFormat),
	}

	p.active = activeLocale(opts)
	if !p.active.IsNone() {
		if _, err := p.tag(p.active); err != nil {
			logger.Warn("Ignoring locale %s: %v", p.active, err)
			p.active = domain.LocaleNone
		}
	}

	p.locales = []domain.Locale{domain.LocaleNone}
	candidates := append([]domain.Locale{p.active}, opts.Extra...)
	for _, l := range candidates {
		if l.IsNone() || slices.Contains(p.locales, l) {
			continue
		}
		p.locales = append(p.locales, l)
	}

	logger.Debug("Active locale: %s; selectable: %v", p.active, p.locales)
	return p
}

func activeLocale(opts Options) domain.Locale {
	if opts.Override != "" {
		return domain.ParseLocale(opts.Override)
	}
	for _, name := range EnvVars {
		if v := opts.Getenv(name); v != "" {
			return domain.ParseLocale(v)
		}
	}
	return domain.LocaleNone
}

// Locales returns the selectable locales, domain.LocaleNone first.
func (p *Provider) Locales() []domain.Locale {
	return slices.Clone(p.locales)
}

// Active returns the locale preselected for new keys.
func (p *Provider) Active() domain.Locale {
	return p.active
}

// Collation returns a collation for the locale. Each call builds its own
// collator; the tag and number format are cached.
func (p *Provider) Collation(locale domain.Locale) (driven.Collation, error) {
	if locale.IsNone() {
		return ordinal{}, nil
	}

	tag, err := p.tag(locale)
	if err != nil {
		return nil, err
	}

	return &collation{
		collator: collate.New(tag),
		numbers:  p.format(locale, tag),
	}, nil
}

// Name returns the locale's name in its own language, e.g. "Deutsch".
func (p *Provider) Name(locale domain.Locale) string {
	if locale.IsNone() {
		return "No locale"
	}
	tag, err := p.tag(locale)
	if err != nil {
		return locale.String()
	}
	name := display.Self.Name(tag)
	if name == "" {
		return locale.String()
	}
	return cases.Title(tag).String(name)
}

func (p *Provider) tag(locale domain.Locale) (language.Tag, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if tag, ok := p.tags[locale]; ok {
		return tag, nil
	}
	tag, err := language.Parse(string(locale))
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", domain.ErrInvalidSortKey, locale, err)
	}
	p.tags[locale] = tag
	return tag, nil
}

func (p *Provider) format(locale domain.Locale, tag language.Tag) *numberFormat {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f, ok := p.formats[locale]; ok {
		return f
	}
	f := discoverFormat(tag)
	p.formats[locale] = f
	return f
}

// collation is not safe for concurrent use; collate.Collator keeps buffers.
type collation struct {
	collator *collate.Collator
	numbers  *numberFormat
}

func (c *collation) Compare(a, b string) int {
	return c.collator.CompareString(a, b)
}

func (c *collation) ParseNumber(s string) (float64, error) {
	return c.numbers.parse(s)
}

// ordinal compares bytes and reads plain numbers.
type ordinal struct{}

func (ordinal) Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (ordinal) ParseNumber(s string) (float64, error) {
	return plainFormat.parse(s)
}
