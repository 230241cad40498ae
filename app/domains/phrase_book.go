package domains

// DefaultKey holds the fallback phrases used when a day has none
const DefaultKey = "_default"

// PhraseBook maps a day-key to its ordered phrases
type PhraseBook map[string][]string

// Clone returns a deep copy of the book
func (b PhraseBook) Clone() PhraseBook {
	out := make(PhraseBook, len(b))
	for day, phrases := range b {
		cp := make([]string, len(phrases))
		copy(cp, phrases)
		out[day] = cp
	}
	return out
}

// Pool returns the phrases for day, falling back to the default phrases
func (b PhraseBook) Pool(day string) []string {
	if phrases := b[day]; len(phrases) > 0 {
		return phrases
	}
	return b[DefaultKey]
}

// Empty reports whether the book holds no phrases at all
func (b PhraseBook) Empty() bool {
	for _, phrases := range b {
		if len(phrases) > 0 {
			return false
		}
	}
	return true
}
