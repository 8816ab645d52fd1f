package domain

// Settings holds the user's configured defaults.
type Settings struct {
	// Locale overrides the environment locale. Empty uses the
	// environment; "none" disables locale-aware comparison.
	Locale string

	// ExtraLocales are offered in addition to none and the active locale.
	ExtraLocales []Locale

	// DefaultKeys are used when no keys are given and the dialog is not
	// shown, and preselected in the dialog otherwise.
	DefaultKeys []SortKey

	// Interactive shows the key dialog when a terminal is available.
	Interactive bool

	// Strict treats a marked/plain line count mismatch as an error.
	Strict bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Interactive: true,
	}
}

// DefaultKeySpecs renders the default keys in ParseSortKey syntax.
func (s Settings) DefaultKeySpecs() []string {
	specs := make([]string, len(s.DefaultKeys))
	for i, k := range s.DefaultKeys {
		specs[i] = k.String()
	}
	return specs
}

// LocaleStrings renders the extra locales as strings.
func (s Settings) LocaleStrings() []string {
	out := make([]string, len(s.ExtraLocales))
	for i, l := range s.ExtraLocales {
		out[i] = l.String()
	}
	return out
}
