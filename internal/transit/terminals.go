package transit

import (
	"sort"

	"evacroute/internal/geo"
	"evacroute/internal/models"
)

// maxIntercityOptions caps the merged terminal list per request.
const maxIntercityOptions = 6

type terminal struct {
	City     string
	Coord    models.Coordinate
	Carriers []string
	Address  string
}

// terminalDirectory lists major US intercity coach terminals. Coverage
// is the national carrier network, not every flag stop.
var terminalDirectory = []terminal{
	{"New York, NY", models.Coordinate{Lat: 40.7570, Lon: -73.9903}, []string{"Greyhound", "FlixBus", "Megabus"}, "Port Authority Bus Terminal, 625 8th Ave"},
	{"Los Angeles, CA", models.Coordinate{Lat: 34.0339, Lon: -118.2387}, []string{"Greyhound", "FlixBus"}, "1716 E 7th St"},
	{"Chicago, IL", models.Coordinate{Lat: 41.8748, Lon: -87.6434}, []string{"Greyhound", "FlixBus", "Megabus"}, "630 W Harrison St"},
	{"Houston, TX", models.Coordinate{Lat: 29.7457, Lon: -95.3693}, []string{"Greyhound", "FlixBus"}, "2121 Main St"},
	{"Phoenix, AZ", models.Coordinate{Lat: 33.4280, Lon: -112.0097}, []string{"Greyhound", "FlixBus"}, "2115 E Buckeye Rd"},
	{"Philadelphia, PA", models.Coordinate{Lat: 39.9551, Lon: -75.1583}, []string{"Greyhound", "FlixBus", "Megabus"}, "1001 Filbert St"},
	{"San Antonio, TX", models.Coordinate{Lat: 29.4260, Lon: -98.4862}, []string{"Greyhound", "FlixBus"}, "500 N St Mary's St"},
	{"Dallas, TX", models.Coordinate{Lat: 32.7812, Lon: -96.8030}, []string{"Greyhound", "FlixBus"}, "205 S Lamar St"},
	{"Austin, TX", models.Coordinate{Lat: 30.3340, Lon: -97.7052}, []string{"Greyhound", "FlixBus"}, "916 E Koenig Ln"},
	{"Jacksonville, FL", models.Coordinate{Lat: 30.3248, Lon: -81.6664}, []string{"Greyhound", "FlixBus"}, "10 N Pearl St"},
	{"Charlotte, NC", models.Coordinate{Lat: 35.2357, Lon: -80.8525}, []string{"Greyhound", "FlixBus"}, "601 W Trade St"},
	{"Seattle, WA", models.Coordinate{Lat: 47.5990, Lon: -122.3284}, []string{"Greyhound", "FlixBus"}, "503 S Royal Brougham Way"},
	{"Denver, CO", models.Coordinate{Lat: 39.7526, Lon: -104.9995}, []string{"Greyhound", "FlixBus"}, "Union Station, 1701 Wynkoop St"},
	{"Washington, DC", models.Coordinate{Lat: 38.8977, Lon: -77.0065}, []string{"Greyhound", "FlixBus", "Megabus"}, "Union Station, 50 Massachusetts Ave NE"},
	{"Nashville, TN", models.Coordinate{Lat: 36.1530, Lon: -86.7733}, []string{"Greyhound", "FlixBus"}, "709 Rep. John Lewis Way S"},
	{"Boston, MA", models.Coordinate{Lat: 42.3484, Lon: -71.0550}, []string{"Greyhound", "FlixBus", "Megabus"}, "South Station, 700 Atlantic Ave"},
	{"Portland, OR", models.Coordinate{Lat: 45.5302, Lon: -122.6768}, []string{"Greyhound", "FlixBus"}, "600 NW 6th Ave"},
	{"Las Vegas, NV", models.Coordinate{Lat: 36.1630, Lon: -115.1482}, []string{"Greyhound", "FlixBus"}, "200 S Main St"},
	{"Memphis, TN", models.Coordinate{Lat: 35.0620, Lon: -89.9888}, []string{"Greyhound", "FlixBus"}, "3033 Airways Blvd"},
	{"Detroit, MI", models.Coordinate{Lat: 42.3369, Lon: -83.0650}, []string{"Greyhound", "FlixBus"}, "1001 Howard St"},
	{"Baltimore, MD", models.Coordinate{Lat: 39.2674, Lon: -76.6293}, []string{"Greyhound", "FlixBus"}, "2110 Haines St"},
	{"Milwaukee, WI", models.Coordinate{Lat: 43.0387, Lon: -87.9188}, []string{"Greyhound", "FlixBus", "Megabus"}, "433 W St Paul Ave"},
	{"Albuquerque, NM", models.Coordinate{Lat: 35.0815, Lon: -106.6481}, []string{"Greyhound", "FlixBus"}, "320 1st St SW"},
	{"Sacramento, CA", models.Coordinate{Lat: 38.5828, Lon: -121.4944}, []string{"Greyhound", "FlixBus"}, "420 Richards Blvd"},
	{"Kansas City, MO", models.Coordinate{Lat: 39.0840, Lon: -94.5852}, []string{"Greyhound", "FlixBus"}, "1101 Troost Ave"},
	{"Atlanta, GA", models.Coordinate{Lat: 33.7478, Lon: -84.3917}, []string{"Greyhound", "FlixBus", "Megabus"}, "232 Forsyth St SW"},
	{"Miami, FL", models.Coordinate{Lat: 25.7936, Lon: -80.2903}, []string{"Greyhound", "FlixBus"}, "3801 NW 21st St"},
	{"Tampa, FL", models.Coordinate{Lat: 27.9537, Lon: -82.4515}, []string{"Greyhound", "FlixBus"}, "610 Polk St"},
	{"Orlando, FL", models.Coordinate{Lat: 28.5538, Lon: -81.3930}, []string{"Greyhound", "FlixBus"}, "555 N John Young Pkwy"},
	{"New Orleans, LA", models.Coordinate{Lat: 29.9461, Lon: -90.0782}, []string{"Greyhound", "FlixBus"}, "Union Passenger Terminal, 1001 Loyola Ave"},
	{"Minneapolis, MN", models.Coordinate{Lat: 44.9553, Lon: -93.2778}, []string{"Greyhound", "FlixBus", "Megabus"}, "950 Hawthorne Ave"},
	{"Raleigh, NC", models.Coordinate{Lat: 35.7772, Lon: -78.6455}, []string{"Greyhound", "FlixBus"}, "Union Station, 510 W Martin St"},
	{"St. Louis, MO", models.Coordinate{Lat: 38.6239, Lon: -90.2051}, []string{"Greyhound", "FlixBus"}, "430 S 15th St"},
	{"Salt Lake City, UT", models.Coordinate{Lat: 40.7656, Lon: -111.9107}, []string{"Greyhound", "FlixBus"}, "300 S 600 W"},
	{"Oklahoma City, OK", models.Coordinate{Lat: 35.4650, Lon: -97.5209}, []string{"Greyhound", "FlixBus"}, "1948 E Reno Ave"},
	{"El Paso, TX", models.Coordinate{Lat: 31.7572, Lon: -106.4912}, []string{"Greyhound", "FlixBus"}, "200 W San Antonio Ave"},
	{"Richmond, VA", models.Coordinate{Lat: 37.5620, Lon: -77.4700}, []string{"Greyhound", "FlixBus"}, "2910 N Arthur Ashe Blvd"},
	{"Pittsburgh, PA", models.Coordinate{Lat: 40.4446, Lon: -79.9926}, []string{"Greyhound", "FlixBus"}, "55 11th St"},
	{"Cleveland, OH", models.Coordinate{Lat: 41.5012, Lon: -81.6807}, []string{"Greyhound", "FlixBus"}, "1465 Chester Ave"},
	{"San Francisco, CA", models.Coordinate{Lat: 37.7896, Lon: -122.3964}, []string{"Greyhound", "FlixBus"}, "Salesforce Transit Center, 425 Mission St"},
}

// NearestTerminals returns the n directory terminals closest to
// origin, with distances filled in.
func NearestTerminals(origin models.Coordinate, n int) []models.IntercityTerminal {
	out := make([]models.IntercityTerminal, 0, len(terminalDirectory))
	for _, t := range terminalDirectory {
		out = append(out, models.IntercityTerminal{
			City:       t.City,
			Coordinate: t.Coord,
			Carriers:   t.Carriers,
			Address:    t.Address,
			DistanceMi: geo.Haversine(origin, t.Coord),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceMi < out[j].DistanceMi })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// MergeCoachStops folds coach-classified stops discovered near the
// origin into the terminal list, deduplicating by name and keeping the
// result sorted by distance and capped.
func MergeCoachStops(terminals []models.IntercityTerminal, stops []models.TransitStop, origin models.Coordinate) []models.IntercityTerminal {
	seen := make(map[string]bool, len(terminals))
	for _, t := range terminals {
		seen[t.City] = true
	}

	merged := append([]models.IntercityTerminal(nil), terminals...)
	for _, s := range stops {
		if s.Category != models.CategoryIntercityCoach || seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		carriers := []string{"Intercity coach"}
		if s.Operator != "" {
			carriers = []string{s.Operator}
		}
		merged = append(merged, models.IntercityTerminal{
			City:       s.Name,
			Coordinate: s.Coordinate,
			Carriers:   carriers,
			DistanceMi: geo.Haversine(origin, s.Coordinate),
		})
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].DistanceMi < merged[j].DistanceMi })
	if len(merged) > maxIntercityOptions {
		merged = merged[:maxIntercityOptions]
	}
	return merged
}
