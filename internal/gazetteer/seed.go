package gazetteer

import "evacroute/internal/models"

// seed covers the metros and evacuation corridors the engine is most
// often asked about. Extend per deployment via GAZETTEER_PATH.
var seed = []Place{
	{Name: "New York", State: "NY", Coord: models.Coordinate{Lat: 40.7128, Lon: -74.0060}},
	{Name: "Los Angeles", State: "CA", Coord: models.Coordinate{Lat: 34.0522, Lon: -118.2437}},
	{Name: "Chicago", State: "IL", Coord: models.Coordinate{Lat: 41.8781, Lon: -87.6298}},
	{Name: "Houston", State: "TX", Coord: models.Coordinate{Lat: 29.7604, Lon: -95.3698}},
	{Name: "Phoenix", State: "AZ", Coord: models.Coordinate{Lat: 33.4484, Lon: -112.0740}},
	{Name: "Philadelphia", State: "PA", Coord: models.Coordinate{Lat: 39.9526, Lon: -75.1652}},
	{Name: "San Antonio", State: "TX", Coord: models.Coordinate{Lat: 29.4241, Lon: -98.4936}},
	{Name: "San Diego", State: "CA", Coord: models.Coordinate{Lat: 32.7157, Lon: -117.1611}},
	{Name: "Dallas", State: "TX", Coord: models.Coordinate{Lat: 32.7767, Lon: -96.7970}},
	{Name: "Austin", State: "TX", Coord: models.Coordinate{Lat: 30.2672, Lon: -97.7431}},
	{Name: "Jacksonville", State: "FL", Coord: models.Coordinate{Lat: 30.3322, Lon: -81.6557}},
	{Name: "San Jose", State: "CA", Coord: models.Coordinate{Lat: 37.3382, Lon: -121.8863}},
	{Name: "Fort Worth", State: "TX", Coord: models.Coordinate{Lat: 32.7555, Lon: -97.3308}},
	{Name: "Columbus", State: "OH", Coord: models.Coordinate{Lat: 39.9612, Lon: -82.9988}},
	{Name: "Charlotte", State: "NC", Coord: models.Coordinate{Lat: 35.2271, Lon: -80.8431}},
	{Name: "Indianapolis", State: "IN", Coord: models.Coordinate{Lat: 39.7684, Lon: -86.1581}},
	{Name: "San Francisco", State: "CA", Coord: models.Coordinate{Lat: 37.7749, Lon: -122.4194}},
	{Name: "Seattle", State: "WA", Coord: models.Coordinate{Lat: 47.6062, Lon: -122.3321}},
	{Name: "Denver", State: "CO", Coord: models.Coordinate{Lat: 39.7392, Lon: -104.9903}},
	{Name: "Washington", State: "DC", Coord: models.Coordinate{Lat: 38.9072, Lon: -77.0369}},
	{Name: "Nashville", State: "TN", Coord: models.Coordinate{Lat: 36.1627, Lon: -86.7816}},
	{Name: "Oklahoma City", State: "OK", Coord: models.Coordinate{Lat: 35.4676, Lon: -97.5164}},
	{Name: "El Paso", State: "TX", Coord: models.Coordinate{Lat: 31.7619, Lon: -106.4850}},
	{Name: "Boston", State: "MA", Coord: models.Coordinate{Lat: 42.3601, Lon: -71.0589}},
	{Name: "Portland", State: "OR", Coord: models.Coordinate{Lat: 45.5152, Lon: -122.6784}},
	{Name: "Las Vegas", State: "NV", Coord: models.Coordinate{Lat: 36.1699, Lon: -115.1398}},
	{Name: "Memphis", State: "TN", Coord: models.Coordinate{Lat: 35.1495, Lon: -90.0490}},
	{Name: "Detroit", State: "MI", Coord: models.Coordinate{Lat: 42.3314, Lon: -83.0458}},
	{Name: "Louisville", State: "KY", Coord: models.Coordinate{Lat: 38.2527, Lon: -85.7585}},
	{Name: "Baltimore", State: "MD", Coord: models.Coordinate{Lat: 39.2904, Lon: -76.6122}},
	{Name: "Milwaukee", State: "WI", Coord: models.Coordinate{Lat: 43.0389, Lon: -87.9065}},
	{Name: "Albuquerque", State: "NM", Coord: models.Coordinate{Lat: 35.0844, Lon: -106.6504}},
	{Name: "Tucson", State: "AZ", Coord: models.Coordinate{Lat: 32.2226, Lon: -110.9747}},
	{Name: "Fresno", State: "CA", Coord: models.Coordinate{Lat: 36.7378, Lon: -119.7871}},
	{Name: "Sacramento", State: "CA", Coord: models.Coordinate{Lat: 38.5816, Lon: -121.4944}},
	{Name: "Kansas City", State: "MO", Coord: models.Coordinate{Lat: 39.0997, Lon: -94.5786}},
	{Name: "Atlanta", State: "GA", Coord: models.Coordinate{Lat: 33.7490, Lon: -84.3880}},
	{Name: "Miami", State: "FL", Coord: models.Coordinate{Lat: 25.7617, Lon: -80.1918}},
	{Name: "Tampa", State: "FL", Coord: models.Coordinate{Lat: 27.9506, Lon: -82.4572}},
	{Name: "Orlando", State: "FL", Coord: models.Coordinate{Lat: 28.5384, Lon: -81.3789}},
	{Name: "New Orleans", State: "LA", Coord: models.Coordinate{Lat: 29.9511, Lon: -90.0715}},
	{Name: "Minneapolis", State: "MN", Coord: models.Coordinate{Lat: 44.9778, Lon: -93.2650}},
	{Name: "Raleigh", State: "NC", Coord: models.Coordinate{Lat: 35.7796, Lon: -78.6382}},
	{Name: "Durham", State: "NC", Coord: models.Coordinate{Lat: 35.9940, Lon: -78.8986}},
	{Name: "Greensboro", State: "NC", Coord: models.Coordinate{Lat: 36.0726, Lon: -79.7920}},
	{Name: "Winston-Salem", State: "NC", Coord: models.Coordinate{Lat: 36.0999, Lon: -80.2442}},
	{Name: "Asheville", State: "NC", Coord: models.Coordinate{Lat: 35.5951, Lon: -82.5515}},
	{Name: "Wilmington", State: "NC", Coord: models.Coordinate{Lat: 34.2257, Lon: -77.9447}},
	{Name: "Fayetteville", State: "NC", Coord: models.Coordinate{Lat: 35.0527, Lon: -78.8784}},
	{Name: "Spokane", State: "WA", Coord: models.Coordinate{Lat: 47.6588, Lon: -117.4260}},
	{Name: "Tacoma", State: "WA", Coord: models.Coordinate{Lat: 47.2529, Lon: -122.4443}},
	{Name: "Everett", State: "WA", Coord: models.Coordinate{Lat: 47.9790, Lon: -122.2021}},
	{Name: "Olympia", State: "WA", Coord: models.Coordinate{Lat: 47.0379, Lon: -122.9007}},
	{Name: "Bellingham", State: "WA", Coord: models.Coordinate{Lat: 48.7519, Lon: -122.4787}},
	{Name: "Boise", State: "ID", Coord: models.Coordinate{Lat: 43.6150, Lon: -116.2023}},
	{Name: "Salt Lake City", State: "UT", Coord: models.Coordinate{Lat: 40.7608, Lon: -111.8910}},
	{Name: "Reno", State: "NV", Coord: models.Coordinate{Lat: 39.5296, Lon: -119.8138}},
	{Name: "Oakland", State: "CA", Coord: models.Coordinate{Lat: 37.8044, Lon: -122.2712}},
	{Name: "Bakersfield", State: "CA", Coord: models.Coordinate{Lat: 35.3733, Lon: -119.0187}},
	{Name: "Santa Rosa", State: "CA", Coord: models.Coordinate{Lat: 38.4404, Lon: -122.7141}},
	{Name: "Chico", State: "CA", Coord: models.Coordinate{Lat: 39.7285, Lon: -121.8375}},
	{Name: "Redding", State: "CA", Coord: models.Coordinate{Lat: 40.5865, Lon: -122.3917}},
	{Name: "Paradise", State: "CA", Coord: models.Coordinate{Lat: 39.7596, Lon: -121.6219}},
	{Name: "Medford", State: "OR", Coord: models.Coordinate{Lat: 42.3265, Lon: -122.8756}},
	{Name: "Eugene", State: "OR", Coord: models.Coordinate{Lat: 44.0521, Lon: -123.0868}},
	{Name: "Bend", State: "OR", Coord: models.Coordinate{Lat: 44.0582, Lon: -121.3153}},
	{Name: "Colorado Springs", State: "CO", Coord: models.Coordinate{Lat: 38.8339, Lon: -104.8214}},
	{Name: "Boulder", State: "CO", Coord: models.Coordinate{Lat: 40.0150, Lon: -105.2705}},
	{Name: "Fort Collins", State: "CO", Coord: models.Coordinate{Lat: 40.5853, Lon: -105.0844}},
	{Name: "Missoula", State: "MT", Coord: models.Coordinate{Lat: 46.8721, Lon: -113.9940}},
	{Name: "Flagstaff", State: "AZ", Coord: models.Coordinate{Lat: 35.1983, Lon: -111.6513}},
	{Name: "Santa Fe", State: "NM", Coord: models.Coordinate{Lat: 35.6870, Lon: -105.9378}},
	{Name: "Baton Rouge", State: "LA", Coord: models.Coordinate{Lat: 30.4515, Lon: -91.1871}},
	{Name: "Mobile", State: "AL", Coord: models.Coordinate{Lat: 30.6954, Lon: -88.0399}},
	{Name: "Pensacola", State: "FL", Coord: models.Coordinate{Lat: 30.4213, Lon: -87.2169}},
	{Name: "Savannah", State: "GA", Coord: models.Coordinate{Lat: 32.0809, Lon: -81.0912}},
	{Name: "Charleston", State: "SC", Coord: models.Coordinate{Lat: 32.7765, Lon: -79.9311}},
	{Name: "Myrtle Beach", State: "SC", Coord: models.Coordinate{Lat: 33.6891, Lon: -78.8867}},
	{Name: "Norfolk", State: "VA", Coord: models.Coordinate{Lat: 36.8508, Lon: -76.2859}},
	{Name: "Richmond", State: "VA", Coord: models.Coordinate{Lat: 37.5407, Lon: -77.4360}},
	{Name: "Pittsburgh", State: "PA", Coord: models.Coordinate{Lat: 40.4406, Lon: -79.9959}},
	{Name: "Cleveland", State: "OH", Coord: models.Coordinate{Lat: 41.4993, Lon: -81.6944}},
	{Name: "Cincinnati", State: "OH", Coord: models.Coordinate{Lat: 39.1031, Lon: -84.5120}},
	{Name: "St. Louis", State: "MO", Coord: models.Coordinate{Lat: 38.6270, Lon: -90.1994}},
	{Name: "Omaha", State: "NE", Coord: models.Coordinate{Lat: 41.2565, Lon: -95.9345}},
	{Name: "Tulsa", State: "OK", Coord: models.Coordinate{Lat: 36.1540, Lon: -95.9928}},
	{Name: "Corpus Christi", State: "TX", Coord: models.Coordinate{Lat: 27.8006, Lon: -97.3964}},
	{Name: "Galveston", State: "TX", Coord: models.Coordinate{Lat: 29.3013, Lon: -94.7977}},
	{Name: "Buffalo", State: "NY", Coord: models.Coordinate{Lat: 42.8864, Lon: -78.8784}},
	{Name: "Albany", State: "NY", Coord: models.Coordinate{Lat: 42.6526, Lon: -73.7562}},
	{Name: "Hartford", State: "CT", Coord: models.Coordinate{Lat: 41.7658, Lon: -72.6734}},
	{Name: "Providence", State: "RI", Coord: models.Coordinate{Lat: 41.8240, Lon: -71.4128}},
	{Name: "Honolulu", State: "HI", Coord: models.Coordinate{Lat: 21.3099, Lon: -157.8581}},
	{Name: "Anchorage", State: "AK", Coord: models.Coordinate{Lat: 61.2181, Lon: -149.9003}},
}
