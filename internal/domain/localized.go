package domain

// Localized folds the parallel per-locale columns (name, name_ar, name_fr)
// into one value: a default plus overrides keyed by locale code. Resolution
// always goes through Resolve so the fallback rule lives in exactly one
// place.
type Localized struct {
	Default   string
	Overrides map[string]string
}

func NewLocalized(def string, overrides map[string]string) Localized {
	clean := make(map[string]string, len(overrides))
	for loc, v := range overrides {
		if v != "" {
			clean[loc] = v
		}
	}
	return Localized{Default: def, Overrides: clean}
}

// Resolve returns the override for locale when one exists, else the default.
func (l Localized) Resolve(locale string) string {
	if v, ok := l.Overrides[locale]; ok {
		return v
	}
	return l.Default
}
