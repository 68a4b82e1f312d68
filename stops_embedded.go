package caltrainlive

// stationLineOrder is the southbound line order (San Francisco to
// Tamien/Gilroy), used to sort the stop catalog. Some entries (Atherton,
// Capitol, Gilroy extension stations) may be absent from the live feed;
// keeping them costs nothing and covers service changes.
var stationLineOrder = []string{
	"San Francisco", "22nd Street", "Bayshore", "South San Francisco", "San Bruno",
	"Millbrae", "Broadway", "Burlingame", "San Mateo", "Hayward Park", "Hillsdale",
	"Belmont", "San Carlos", "Redwood City", "Atherton", "Menlo Park", "Palo Alto",
	"California Avenue", "San Antonio", "Mountain View", "Sunnyvale", "Lawrence",
	"Santa Clara", "College Park", "San Jose Diridon", "Tamien",
	"Capitol", "Blossom Hill", "Morgan Hill", "San Martin", "Gilroy", "Pulgas",
}

// embeddedStops is the last-resort stop list, used when every upstream
// source fails and no cached list exists. Main Caltrain stations; IDs from
// GTFS. Update occasionally if new stations are added.
var embeddedStops = []Stop{
	{ID: "70011", Name: "San Francisco Caltrain Station Northbound"},
	{ID: "70012", Name: "San Francisco Caltrain Station Southbound"},
	{ID: "70021", Name: "22nd Street Caltrain Station Northbound"},
	{ID: "70022", Name: "22nd Street Caltrain Station Southbound"},
	{ID: "70031", Name: "Bayshore Caltrain Station Northbound"},
	{ID: "70032", Name: "Bayshore Caltrain Station Southbound"},
	{ID: "70041", Name: "South San Francisco Caltrain Station Northbound"},
	{ID: "70042", Name: "South San Francisco Caltrain Station Southbound"},
	{ID: "70051", Name: "San Bruno Caltrain Station Northbound"},
	{ID: "70052", Name: "San Bruno Caltrain Station Southbound"},
	{ID: "70061", Name: "Millbrae Caltrain Station Northbound"},
	{ID: "70062", Name: "Millbrae Caltrain Station Southbound"},
	{ID: "70071", Name: "Broadway Caltrain Station Northbound"},
	{ID: "70072", Name: "Broadway Caltrain Station Southbound"},
	{ID: "70081", Name: "Burlingame Caltrain Station Northbound"},
	{ID: "70082", Name: "Burlingame Caltrain Station Southbound"},
	{ID: "70091", Name: "San Mateo Caltrain Station Northbound"},
	{ID: "70092", Name: "San Mateo Caltrain Station Southbound"},
	{ID: "70101", Name: "Hayward Park Caltrain Station Northbound"},
	{ID: "70102", Name: "Hayward Park Caltrain Station Southbound"},
	{ID: "70111", Name: "Hillsdale Caltrain Station Northbound"},
	{ID: "70112", Name: "Hillsdale Caltrain Station Southbound"},
	{ID: "70121", Name: "Belmont Caltrain Station Northbound"},
	{ID: "70122", Name: "Belmont Caltrain Station Southbound"},
	{ID: "70131", Name: "San Carlos Caltrain Station Northbound"},
	{ID: "70132", Name: "San Carlos Caltrain Station Southbound"},
	{ID: "70141", Name: "Redwood City Caltrain Station Northbound"},
	{ID: "70142", Name: "Redwood City Caltrain Station Southbound"},
	{ID: "70151", Name: "Menlo Park Caltrain Station Northbound"},
	{ID: "70152", Name: "Menlo Park Caltrain Station Southbound"},
	{ID: "70161", Name: "Palo Alto Caltrain Station Northbound"},
	{ID: "70162", Name: "Palo Alto Caltrain Station Southbound"},
	{ID: "70171", Name: "California Avenue Caltrain Station Northbound"},
	{ID: "70172", Name: "California Avenue Caltrain Station Southbound"},
	{ID: "70181", Name: "San Antonio Caltrain Station Northbound"},
	{ID: "70182", Name: "San Antonio Caltrain Station Southbound"},
	{ID: "70191", Name: "Mountain View Caltrain Station Northbound"},
	{ID: "70192", Name: "Mountain View Caltrain Station Southbound"},
	{ID: "70201", Name: "Sunnyvale Caltrain Station Northbound"},
	{ID: "70202", Name: "Sunnyvale Caltrain Station Southbound"},
	{ID: "70211", Name: "Lawrence Caltrain Station Northbound"},
	{ID: "70212", Name: "Lawrence Caltrain Station Southbound"},
	{ID: "70221", Name: "Santa Clara Caltrain Station Northbound"},
	{ID: "70222", Name: "Santa Clara Caltrain Station Southbound"},
	{ID: "70231", Name: "College Park Caltrain Station Northbound"},
	{ID: "70232", Name: "College Park Caltrain Station Southbound"},
	{ID: "70241", Name: "San Jose Diridon Caltrain Station Northbound"},
	{ID: "70242", Name: "San Jose Diridon Caltrain Station Southbound"},
	{ID: "70251", Name: "Tamien Caltrain Station Northbound"},
	{ID: "70252", Name: "Tamien Caltrain Station Southbound"},
}
