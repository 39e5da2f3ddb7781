package etl

import "strings"

// teamAliases maps normalized historical or regional team names to the
// canonical country name stored in the countries table. Fixed at build time.
var teamAliases = map[string]string{
	"england":               "United Kingdom",
	"wales":                 "United Kingdom",
	"china pr":              "China",
	"dr congo":              "Democratic Republic of the Congo",
	"republic of ireland":   "Ireland",
	"german dr":             "East Germany",
	"zaïre":                 "Democratic Republic of the Congo",
	"viet nam":              "Vietnam",
	"ivory coast":           "Cote d'Ivoire",
	"côte d’ivoire":         "Cote d'Ivoire",
	"palestine":             "Palestinian Territory",
	"north macedonia":       "Macedonia",
	"iran":                  "Iran",
	"curacao":               "Curacao",
	"czech republic":        "Czechia",
	"reunion":               "Réunion",
	"são tomé and príncipe": "Sao Tome and Principe",
	"timor-leste":           "Timor Leste",
}

// Resolver maps raw team-name strings to canonical country names. The static
// alias table is shared; the former-name table belongs to the resolver
// instance and is filled in during the former-names load phase.
type Resolver struct {
	formerToCurrent map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{formerToCurrent: make(map[string]string)}
}

// Resolve returns the canonical name for raw. Lookup order is the static
// alias table, then the dynamic former-name table. Names found in neither are
// returned trimmed but otherwise unchanged; downstream phases reject them if
// they do not match a stored country. ok is false only for blank input.
func (r *Resolver) Resolve(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	key := normalizeName(trimmed)
	if canonical, found := teamAliases[key]; found {
		return canonical, true
	}
	if canonical, found := r.formerToCurrent[key]; found {
		return canonical, true
	}

	return trimmed, true
}

// RegisterFormerName records former as an alias for the canonical current
// name, making it visible to every later Resolve call.
func (r *Resolver) RegisterFormerName(former, current string) {
	former = strings.TrimSpace(former)
	if former == "" {
		return
	}
	r.formerToCurrent[normalizeName(former)] = strings.TrimSpace(current)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
