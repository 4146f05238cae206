package domain

// County tags used by the gazetteer. Jefferson drives the county
// disambiguation rule and the south-of-river jitter clamp; StClair marks
// the Illinois exception entries validated by the subregion box.
const (
	CountyStLouisCity = "St. Louis City"
	CountyStLouis     = "St. Louis"
	CountyStCharles   = "St. Charles"
	CountyJefferson   = "Jefferson"
	CountyStClair     = "St. Clair"
)

// PlaceCounty tags whole-county entries. It scores through the default
// branch of the type table, below any named place.
const PlaceCounty PlaceType = "county"

// Gazetteer is the curated table of named St. Louis metro places. It is
// the only geographic truth the geocoder consults; pure data, loaded once.
var Gazetteer = []GazetteerEntry{
	// Highway interchanges.
	{Name: "I-64 at Kingshighway", Aliases: []string{"64 and Kingshighway", "Highway 40 at Kingshighway"}, Point: GeoPoint{38.6318, -90.2557}, Type: PlaceIntersection, County: CountyStLouisCity},
	{Name: "I-70 at I-170", Aliases: []string{"70 and 170"}, Point: GeoPoint{38.7382, -90.3558}, Type: PlaceIntersection, County: CountyStLouis},
	{Name: "I-44 at I-270", Aliases: []string{"44 and 270"}, Point: GeoPoint{38.5507, -90.4930}, Type: PlaceIntersection, County: CountyStLouis},
	{Name: "I-55 at I-255", Aliases: []string{"55 and 255"}, Point: GeoPoint{38.4930, -90.3230}, Type: PlaceIntersection, County: CountyStLouis},
	{Name: "I-270 at I-64", Aliases: []string{"270 and 40"}, Point: GeoPoint{38.6158, -90.4528}, Type: PlaceIntersection, County: CountyStLouis},

	// Bridges.
	{Name: "Poplar Street Bridge", Aliases: []string{"PSB"}, Point: GeoPoint{38.6212, -90.1795}, Type: PlaceBridge, County: CountyStLouisCity},
	{Name: "Eads Bridge", Point: GeoPoint{38.6287, -90.1790}, Type: PlaceBridge, County: CountyStLouisCity},
	{Name: "Stan Musial Veterans Memorial Bridge", Aliases: []string{"Stan Span"}, Point: GeoPoint{38.6448, -90.1695}, Type: PlaceBridge, County: CountyStLouisCity},
	{Name: "Martin Luther King Bridge", Aliases: []string{"MLK Bridge"}, Point: GeoPoint{38.6312, -90.1767}, Type: PlaceBridge, County: CountyStLouisCity},
	{Name: "Jefferson Barracks Bridge", Aliases: []string{"JB Bridge"}, Point: GeoPoint{38.4936, -90.2752}, Type: PlaceBridge, County: CountyStLouis},

	// Landmarks.
	{Name: "Gateway Arch", Aliases: []string{"the Arch", "Arch grounds"}, Point: GeoPoint{38.6247, -90.1848}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Busch Stadium", Aliases: []string{"Ballpark Village"}, Point: GeoPoint{38.6226, -90.1928}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Forest Park", Point: GeoPoint{38.6393, -90.2847}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Saint Louis Zoo", Aliases: []string{"St. Louis Zoo"}, Point: GeoPoint{38.6353, -90.2902}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Lambert International Airport", Aliases: []string{"Lambert Airport", "STL airport"}, Point: GeoPoint{38.7487, -90.3700}, Type: PlaceLandmark, County: CountyStLouis},
	{Name: "Union Station", Point: GeoPoint{38.6277, -90.2078}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Enterprise Center", Aliases: []string{"Scottrade Center"}, Point: GeoPoint{38.6268, -90.2027}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "City Museum", Point: GeoPoint{38.6334, -90.2005}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Missouri Botanical Garden", Aliases: []string{"Shaw's Garden"}, Point: GeoPoint{38.6128, -90.2594}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Saint Louis University", Aliases: []string{"SLU"}, Point: GeoPoint{38.6360, -90.2340}, Type: PlaceLandmark, County: CountyStLouisCity},
	{Name: "Washington University", Aliases: []string{"WashU", "Wash U"}, Point: GeoPoint{38.6488, -90.3108}, Type: PlaceLandmark, County: CountyStLouis},
	{Name: "Barnes-Jewish Hospital", Aliases: []string{"Barnes Hospital"}, Point: GeoPoint{38.6355, -90.2632}, Type: PlaceLandmark, County: CountyStLouisCity},

	// Neighborhoods.
	{Name: "Soulard", Point: GeoPoint{38.6090, -90.1994}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "The Hill", Point: GeoPoint{38.6172, -90.2763}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Central West End", Aliases: []string{"CWE"}, Point: GeoPoint{38.6440, -90.2594}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Dogtown", Point: GeoPoint{38.6266, -90.2860}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Tower Grove", Aliases: []string{"Tower Grove South", "Tower Grove Park"}, Point: GeoPoint{38.5935, -90.2533}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Dutchtown", Point: GeoPoint{38.5792, -90.2418}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Lafayette Square", Point: GeoPoint{38.6150, -90.2130}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Downtown St. Louis", Aliases: []string{"downtown STL"}, Point: GeoPoint{38.6270, -90.1994}, Type: PlaceNeighborhood, County: CountyStLouisCity},
	{Name: "Bevo Mill", Point: GeoPoint{38.5820, -90.2650}, Type: PlaceNeighborhood, County: CountyStLouisCity},

	// Municipalities.
	{Name: "Clayton", Point: GeoPoint{38.6426, -90.3237}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Kirkwood", Point: GeoPoint{38.5834, -90.4068}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Webster Groves", Point: GeoPoint{38.5926, -90.3574}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Florissant", Point: GeoPoint{38.7892, -90.3226}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Chesterfield", Point: GeoPoint{38.6631, -90.5771}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Ferguson", Point: GeoPoint{38.7442, -90.3054}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Maplewood", Point: GeoPoint{38.6126, -90.3237}, Type: PlaceCity, County: CountyStLouis},
	{Name: "University City", Aliases: []string{"U City"}, Point: GeoPoint{38.6568, -90.3054}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Ballwin", Point: GeoPoint{38.5951, -90.5462}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Hazelwood", Point: GeoPoint{38.7715, -90.3711}, Type: PlaceCity, County: CountyStLouis},
	{Name: "Fenton", Point: GeoPoint{38.5139, -90.4359}, Type: PlaceCity, County: CountyStLouis},
	{Name: "St. Charles", Aliases: []string{"Saint Charles"}, Point: GeoPoint{38.7881, -90.4974}, Type: PlaceCity, County: CountyStCharles},
	{Name: "Wentzville", Point: GeoPoint{38.8114, -90.8529}, Type: PlaceCity, County: CountyStCharles},
	{Name: "East St. Louis", Point: GeoPoint{38.6245, -90.1510}, Type: PlaceCity, County: CountyStClair},

	// Jefferson County.
	{Name: "Festus", Point: GeoPoint{38.2209, -90.3959}, Type: PlaceCity, County: CountyJefferson},
	{Name: "Arnold", Point: GeoPoint{38.4328, -90.3776}, Type: PlaceCity, County: CountyJefferson},
	{Name: "Imperial", Point: GeoPoint{38.3698, -90.3785}, Type: PlaceCity, County: CountyJefferson},
	{Name: "Hillsboro", Point: GeoPoint{38.2323, -90.5629}, Type: PlaceCity, County: CountyJefferson},
	{Name: "De Soto", Aliases: []string{"DeSoto"}, Point: GeoPoint{38.1395, -90.5551}, Type: PlaceCity, County: CountyJefferson},
	{Name: "High Ridge", Point: GeoPoint{38.4589, -90.5365}, Type: PlaceCity, County: CountyJefferson},
	{Name: "Pevely", Point: GeoPoint{38.2834, -90.3951}, Type: PlaceCity, County: CountyJefferson},
	{Name: "Crystal City", Point: GeoPoint{38.2209, -90.3790}, Type: PlaceCity, County: CountyJefferson},
	{Name: "Jefferson County", Aliases: []string{"Jeffco"}, Point: GeoPoint{38.2617, -90.5379}, Type: PlaceCounty, County: CountyJefferson},

	// Roads and highways.
	{Name: "I-64", Aliases: []string{"Highway 40", "US 40"}, Point: GeoPoint{38.6270, -90.2600}, Type: PlaceRoad, County: CountyStLouisCity},
	{Name: "I-70", Point: GeoPoint{38.7000, -90.3200}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "I-44", Point: GeoPoint{38.5900, -90.3300}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "I-55", Point: GeoPoint{38.5500, -90.2600}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "I-270", Point: GeoPoint{38.6800, -90.4100}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "I-170", Point: GeoPoint{38.6700, -90.3230}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "I-255", Point: GeoPoint{38.5100, -90.2900}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "Kingshighway", Aliases: []string{"Kingshighway Boulevard"}, Point: GeoPoint{38.6350, -90.2570}, Type: PlaceRoad, County: CountyStLouisCity},
	{Name: "Grand Boulevard", Aliases: []string{"South Grand", "North Grand"}, Point: GeoPoint{38.6220, -90.2340}, Type: PlaceRoad, County: CountyStLouisCity},
	{Name: "Gravois", Aliases: []string{"Gravois Avenue", "Gravois Road"}, Point: GeoPoint{38.5900, -90.2700}, Type: PlaceRoad, County: CountyStLouisCity},
	{Name: "Manchester Road", Point: GeoPoint{38.6090, -90.3370}, Type: PlaceRoad, County: CountyStLouis},
	{Name: "Route 21", Aliases: []string{"Highway 21"}, Point: GeoPoint{38.3500, -90.4500}, Type: PlaceRoad, County: CountyJefferson},
	{Name: "Route 141", Aliases: []string{"Highway 141"}, Point: GeoPoint{38.5500, -90.5000}, Type: PlaceRoad, County: CountyStLouis},
}
