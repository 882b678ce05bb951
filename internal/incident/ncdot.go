package incident

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"evacroute/internal/models"
)

// NCDOT pulls active incidents from the NCDOT TIMS API. TIMS is
// queried per county, so the origin city is mapped to its county
// first; an origin outside the lookup table yields no results rather
// than an error.
type NCDOT struct {
	baseURL    string
	ttl        time.Duration
	httpClient *http.Client
}

// NewNCDOT builds the North Carolina feed with the given cache TTL.
func NewNCDOT(baseURL string, ttl time.Duration) *NCDOT {
	return &NCDOT{
		baseURL:    strings.TrimRight(baseURL, "/"),
		ttl:        ttl,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (n *NCDOT) Name() string { return "ncdot" }

func (n *NCDOT) Matches(state string) bool { return state == "NC" }

func (n *NCDOT) TTL() time.Duration { return n.ttl }

type ncdotIncident struct {
	Road      string  `json:"road"`
	CommonNam string  `json:"commonName"`
	Condition string  `json:"condition"`
	Reason    string  `json:"reason"`
	Severity  int     `json:"severity"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fetch implements Feed.
func (n *NCDOT) Fetch(ctx context.Context, req Request) ([]models.RoadIncident, error) {
	countyID, ok := countyForPlace(req.OriginPlace)
	if !ok {
		return nil, nil
	}

	u := fmt.Sprintf("%s/counties/%d/incidents", n.baseURL, countyID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("ncdot: build request: %w", err)
	}

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ncdot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ncdot: status %d", resp.StatusCode)
	}

	var raw []ncdotIncident
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ncdot: decode: %w", err)
	}

	out := make([]models.RoadIncident, 0, len(raw))
	for _, inc := range raw {
		title := inc.Reason
		if title == "" {
			title = inc.Condition
		}
		road := inc.CommonNam
		if road == "" {
			road = inc.Road
		}
		out = append(out, models.RoadIncident{
			Title:    title,
			Road:     road,
			Severity: fmt.Sprintf("%d", inc.Severity),
			Status:   inc.Condition,
			Lat:      inc.Latitude,
			Lon:      inc.Longitude,
			Source:   "ncdot",
		})
	}
	return out, nil
}

// countyForPlace maps a free-text origin like "Raleigh, NC" to its
// TIMS county id.
func countyForPlace(place string) (int, bool) {
	city := strings.ToLower(strings.TrimSpace(place))
	if i := strings.IndexAny(city, ","); i >= 0 {
		city = strings.TrimSpace(city[:i])
	}
	county, ok := cityToCounty[city]
	if !ok {
		return 0, false
	}
	id, ok := countyIDs[county]
	return id, ok
}

// cityToCounty covers the larger NC municipalities.
var cityToCounty = map[string]string{
	"raleigh":       "Wake",
	"cary":          "Wake",
	"apex":          "Wake",
	"wake forest":   "Wake",
	"durham":        "Durham",
	"chapel hill":   "Orange",
	"charlotte":     "Mecklenburg",
	"concord":       "Cabarrus",
	"gastonia":      "Gaston",
	"greensboro":    "Guilford",
	"high point":    "Guilford",
	"winston-salem": "Forsyth",
	"winston salem": "Forsyth",
	"fayetteville":  "Cumberland",
	"wilmington":    "New Hanover",
	"asheville":     "Buncombe",
	"boone":         "Watauga",
	"hickory":       "Catawba",
	"greenville":    "Pitt",
	"jacksonville":  "Onslow",
	"new bern":      "Craven",
	"goldsboro":     "Wayne",
	"rocky mount":   "Nash",
	"wilson":        "Wilson",
	"burlington":    "Alamance",
	"kannapolis":    "Cabarrus",
	"mooresville":   "Iredell",
	"statesville":   "Iredell",
	"salisbury":     "Rowan",
	"monroe":        "Union",
	"sanford":       "Lee",
	"asheboro":      "Randolph",
	"lumberton":     "Robeson",
	"elizabeth city": "Pasquotank",
	"morehead city": "Carteret",
	"kitty hawk":    "Dare",
	"nags head":     "Dare",
	"hendersonville": "Henderson",
	"shelby":        "Cleveland",
	"morganton":     "Burke",
}

// countyIDs lists the hundred NC counties in TIMS id order.
var countyIDs = map[string]int{
	"Alamance": 1, "Alexander": 2, "Alleghany": 3, "Anson": 4, "Ashe": 5,
	"Avery": 6, "Beaufort": 7, "Bertie": 8, "Bladen": 9, "Brunswick": 10,
	"Buncombe": 11, "Burke": 12, "Cabarrus": 13, "Caldwell": 14, "Camden": 15,
	"Carteret": 16, "Caswell": 17, "Catawba": 18, "Chatham": 19, "Cherokee": 20,
	"Chowan": 21, "Clay": 22, "Cleveland": 23, "Columbus": 24, "Craven": 25,
	"Cumberland": 26, "Currituck": 27, "Dare": 28, "Davidson": 29, "Davie": 30,
	"Duplin": 31, "Durham": 32, "Edgecombe": 33, "Forsyth": 34, "Franklin": 35,
	"Gaston": 36, "Gates": 37, "Graham": 38, "Granville": 39, "Greene": 40,
	"Guilford": 41, "Halifax": 42, "Harnett": 43, "Haywood": 44, "Henderson": 45,
	"Hertford": 46, "Hoke": 47, "Hyde": 48, "Iredell": 49, "Jackson": 50,
	"Johnston": 51, "Jones": 52, "Lee": 53, "Lenoir": 54, "Lincoln": 55,
	"Macon": 56, "Madison": 57, "Martin": 58, "McDowell": 59, "Mecklenburg": 60,
	"Mitchell": 61, "Montgomery": 62, "Moore": 63, "Nash": 64, "New Hanover": 65,
	"Northampton": 66, "Onslow": 67, "Orange": 68, "Pamlico": 69, "Pasquotank": 70,
	"Pender": 71, "Perquimans": 72, "Person": 73, "Pitt": 74, "Polk": 75,
	"Randolph": 76, "Richmond": 77, "Robeson": 78, "Rockingham": 79, "Rowan": 80,
	"Rutherford": 81, "Sampson": 82, "Scotland": 83, "Stanly": 84, "Stokes": 85,
	"Surry": 86, "Swain": 87, "Transylvania": 88, "Tyrrell": 89, "Union": 90,
	"Vance": 91, "Wake": 92, "Warren": 93, "Washington": 94, "Watauga": 95,
	"Wayne": 96, "Wilkes": 97, "Wilson": 98, "Yadkin": 99, "Yancey": 100,
}
