// Package gazetteer resolves common US place names to coordinates from
// a built-in table, so the engine can answer for well-known cities
// without a network round trip. Unknown names fall through to the
// online geocoder.
package gazetteer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"evacroute/internal/models"
)

// Place is a named point with its state for disambiguation.
type Place struct {
	Name  string            `json:"name"`
	State string            `json:"state"`
	Coord models.Coordinate `json:"coord"`
}

// Gazetteer is an in-memory place-name index. Lookups are normalized
// to lowercase with the state suffix stripped, so "Raleigh, NC",
// "raleigh nc" and "Raleigh" all hit the same entry.
type Gazetteer struct {
	byName map[string]Place
}

// New returns a gazetteer seeded with the built-in city table.
func New() *Gazetteer {
	g := &Gazetteer{byName: make(map[string]Place, len(seed))}
	for _, p := range seed {
		g.add(p)
	}
	return g
}

// Load merges additional places from a JSON file into g. The file is a
// flat array of Place objects.
func (g *Gazetteer) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gazetteer: read %s: %w", path, err)
	}
	var extra []Place
	if err := json.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("gazetteer: parse %s: %w", path, err)
	}
	for _, p := range extra {
		g.add(p)
	}
	return nil
}

func (g *Gazetteer) add(p Place) {
	key := normalize(p.Name)
	g.byName[key] = p
	if p.State != "" {
		g.byName[key+" "+strings.ToLower(p.State)] = p
	}
}

// Lookup resolves a free-text place name. The second return is false
// when the name is not in the table.
func (g *Gazetteer) Lookup(query string) (Place, bool) {
	key := normalize(query)
	if p, ok := g.byName[key]; ok {
		return p, true
	}
	// Retry without a trailing two-letter state token.
	fields := strings.Fields(key)
	if n := len(fields); n > 1 && len(fields[n-1]) == 2 {
		if p, ok := g.byName[strings.Join(fields[:n-1], " ")]; ok {
			return p, true
		}
	}
	return Place{}, false
}

// StateHint extracts a trailing two-letter state code from a free-text
// place name, or resolves it from the built-in table. Returns "" when
// no state can be determined.
func (g *Gazetteer) StateHint(query string) string {
	if p, ok := g.Lookup(query); ok && p.State != "" {
		return strings.ToUpper(p.State)
	}
	fields := strings.Fields(normalize(query))
	if n := len(fields); n > 0 && len(fields[n-1]) == 2 {
		code := strings.ToUpper(fields[n-1])
		if _, ok := stateNames[code]; ok {
			return code
		}
	}
	return ""
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}
