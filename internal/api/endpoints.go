package api

const (
	// BaseURL is the base URL for the MVG web API
	BaseURL = "https://www.mvg.de"

	// EndpointStations returns the full station catalog as one JSON array.
	// No parameters; the response is a few megabytes and rarely changes.
	EndpointStations = "/.rest/zdm/stations"

	// EndpointDepartures returns the live departure board of one station
	// Required params: globalId
	EndpointDepartures = "/api/fib/v2/departure"
)
