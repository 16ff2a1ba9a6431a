package usecase

import (
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// PreferenceMatcher decides whether a raw airline string matches any entry
// of a preferred or avoided list. It shares the invocation's resolver cache.
type PreferenceMatcher struct {
	resolver *AirlineResolver
}

// NewPreferenceMatcher creates a matcher on top of an invocation-scoped resolver.
func NewPreferenceMatcher(resolver *AirlineResolver) *PreferenceMatcher {
	return &PreferenceMatcher{resolver: resolver}
}

// Matches reports whether raw matches any entry in list. An empty list never matches.
func (m *PreferenceMatcher) Matches(raw string, list []string) bool {
	raw = strings.TrimSpace(raw)
	if len(list) == 0 || raw == "" {
		return false
	}

	rawID := m.resolver.Resolve(raw)
	for _, entry := range list {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if m.matchEntry(raw, rawID, entry) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any of the raw strings matches the list.
func (m *PreferenceMatcher) MatchesAny(raws []string, list []string) bool {
	for _, raw := range raws {
		if m.Matches(raw, list) {
			return true
		}
	}
	return false
}

// MatchedEntry returns the first list entry raw matches.
func (m *PreferenceMatcher) MatchedEntry(raw string, list []string) (string, bool) {
	for _, entry := range list {
		if m.Matches(raw, []string{entry}) {
			return strings.TrimSpace(entry), true
		}
	}
	return "", false
}

func (m *PreferenceMatcher) matchEntry(raw string, rawID domain.AirlineIdentity, entry string) bool {
	if strings.EqualFold(raw, entry) {
		return true
	}

	entryID := m.resolver.Resolve(entry)
	if rawID.Known && entryID.Known {
		return rawID.Code == entryID.Code
	}

	// At least one side is not in the directory; fall back to string tiers.
	rk, ek := codeKey(raw), codeKey(entry)
	if rk == ek || hasFlightNumberSuffix(rk, ek) || hasFlightNumberSuffix(ek, rk) {
		return true
	}

	rn := normalizeKey(rawID.DisplayName(raw))
	en := normalizeKey(entryID.DisplayName(entry))
	if rn == en {
		return true
	}
	if substantialName(rn) && substantialName(en) && (containsWords(rn, en) || containsWords(en, rn)) {
		return true
	}

	index := m.resolver.Index()
	ra, ea := index.aliasTarget(raw), index.aliasTarget(entry)
	switch {
	case ra != "" && (ra == ea || ra == en):
		return true
	case ea != "" && ea == rn:
		return true
	}
	return false
}
