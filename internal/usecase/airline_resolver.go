package usecase

import (
	"sort"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// AirlineIndex is the prebuilt, read-only lookup structure over an airline
// directory. Build it once and share it; it is safe for concurrent use.
type AirlineIndex struct {
	byCode  map[string]domain.AirlineInfo
	byName  map[string]domain.AirlineInfo
	aliases map[string]string

	// codes are ordered longest first, then alphabetically
	codes []string
	// names are ordered by airline code for deterministic substring scans
	names []indexedName
}

type indexedName struct {
	key  string
	info domain.AirlineInfo
}

// NewAirlineIndex builds an index from the given directory.
func NewAirlineIndex(dir domain.AirlineDirectory) *AirlineIndex {
	ix := &AirlineIndex{
		byCode:  make(map[string]domain.AirlineInfo),
		byName:  make(map[string]domain.AirlineInfo),
		aliases: make(map[string]string),
	}
	if dir == nil {
		return ix
	}

	airlines := dir.Airlines()
	sort.SliceStable(airlines, func(i, j int) bool {
		return codeKey(airlines[i].Code) < codeKey(airlines[j].Code)
	})

	for _, info := range airlines {
		code := codeKey(info.Code)
		if code == "" {
			continue
		}
		if _, dup := ix.byCode[code]; dup {
			continue
		}
		ix.byCode[code] = info
		ix.codes = append(ix.codes, code)

		if name := normalizeKey(info.Name); name != "" {
			if _, dup := ix.byName[name]; !dup {
				ix.byName[name] = info
				ix.names = append(ix.names, indexedName{key: name, info: info})
			}
		}
	}

	sort.SliceStable(ix.codes, func(i, j int) bool {
		if len(ix.codes[i]) != len(ix.codes[j]) {
			return len(ix.codes[i]) > len(ix.codes[j])
		}
		return ix.codes[i] < ix.codes[j]
	})

	for alias, canonical := range dir.Aliases() {
		a, c := normalizeKey(alias), normalizeKey(canonical)
		if a == "" || c == "" {
			continue
		}
		ix.aliases[a] = c
	}

	return ix
}

// Len returns the number of indexed airlines.
func (ix *AirlineIndex) Len() int {
	return len(ix.codes)
}

// NewResolver returns a resolver with its own memo cache. Use one per
// ranking invocation so cached results never cross searches.
func (ix *AirlineIndex) NewResolver() *AirlineResolver {
	return &AirlineResolver{
		index: ix,
		cache: make(map[string]domain.AirlineIdentity),
	}
}

// aliasTarget returns the canonical name an informal name or code maps to.
func (ix *AirlineIndex) aliasTarget(raw string) string {
	return ix.aliases[normalizeKey(raw)]
}

// resolve walks the five matching tiers; the first hit wins.
func (ix *AirlineIndex) resolve(raw string) domain.AirlineIdentity {
	key := codeKey(raw)
	name := normalizeKey(raw)
	if key == "" || name == "" {
		return domain.AirlineIdentity{}
	}

	if id, ok := ix.matchCode(key); ok {
		return id
	}
	if id, ok := ix.matchName(name); ok {
		return id
	}

	// Alias targets are canonical names, so only the name tiers apply.
	if canonical, ok := ix.aliases[name]; ok {
		if id, ok := ix.matchName(canonical); ok {
			return id
		}
	}
	if canonical, ok := ix.aliases[normalizeKey(key)]; ok {
		if id, ok := ix.matchName(canonical); ok {
			return id
		}
	}

	return domain.AirlineIdentity{}
}

// matchCode covers the exact-code and code-prefix tiers. A prefix only counts
// when a flight number follows it ("B61707", "AA 100"), so "American" never
// resolves to "AM".
func (ix *AirlineIndex) matchCode(key string) (domain.AirlineIdentity, bool) {
	if info, ok := ix.byCode[key]; ok {
		return domain.IdentityFromInfo(info), true
	}
	for _, code := range ix.codes {
		if hasFlightNumberSuffix(key, code) {
			return domain.IdentityFromInfo(ix.byCode[code]), true
		}
	}
	return domain.AirlineIdentity{}, false
}

// matchName covers the exact-name and whole-word substring tiers.
func (ix *AirlineIndex) matchName(name string) (domain.AirlineIdentity, bool) {
	if info, ok := ix.byName[name]; ok {
		return domain.IdentityFromInfo(info), true
	}
	if !substantialName(name) {
		return domain.AirlineIdentity{}, false
	}
	for _, entry := range ix.names {
		if containsWords(entry.key, name) || containsWords(name, entry.key) {
			return domain.IdentityFromInfo(entry.info), true
		}
	}
	return domain.AirlineIdentity{}, false
}

// AirlineResolver maps raw airline strings to canonical identities, memoising
// per distinct trimmed input. It is not safe for concurrent use.
type AirlineResolver struct {
	index *AirlineIndex
	cache map[string]domain.AirlineIdentity
}

// Resolve returns the canonical identity for raw. Empty or unknown input
// yields the zero identity.
func (r *AirlineResolver) Resolve(raw string) domain.AirlineIdentity {
	if id, ok := r.cache[raw]; ok {
		return id
	}
	id := r.index.resolve(raw)
	r.cache[raw] = id
	return id
}

// Index returns the shared index this resolver reads from.
func (r *AirlineResolver) Index() *AirlineIndex {
	return r.index
}
