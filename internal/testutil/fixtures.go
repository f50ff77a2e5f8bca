package testutil

// Sample MVG payloads for API and catalog tests

// SampleStationsResponse is a small slice of the station catalog.
// Order matters: tests rely on catalog order being preserved.
const SampleStationsResponse = `[
	{
		"name": "Hauptbahnhof",
		"place": "München",
		"id": "de:09162:6",
		"divaId": 6,
		"abbreviation": "HBF",
		"tariffZones": "m",
		"products": ["UBAHN", "BUS", "TRAM", "SBAHN", "BAHN"],
		"latitude": 48.14003,
		"longitude": 11.56107
	},
	{
		"name": "Ostbahnhof",
		"place": "München",
		"id": "de:09162:5",
		"divaId": 5,
		"tariffZones": "m",
		"products": ["UBAHN", "BUS", "TRAM", "SBAHN", "BAHN"],
		"latitude": 48.12729,
		"longitude": 11.60454
	},
	{
		"name": "Marienplatz",
		"place": "München",
		"id": "de:09162:2",
		"divaId": 2,
		"abbreviation": "MP",
		"tariffZones": "m",
		"products": ["UBAHN", "SBAHN"],
		"latitude": 48.13725,
		"longitude": 11.57546
	},
	{
		"name": "Ostfriedhof",
		"place": "München",
		"id": "de:09162:1180",
		"divaId": 1180,
		"tariffZones": "m",
		"products": ["BUS", "TRAM"],
		"latitude": 48.11953,
		"longitude": 11.58214
	},
	{
		"name": "Flughafen München",
		"place": "München",
		"id": "de:09178:2684",
		"divaId": 2684,
		"tariffZones": "5",
		"products": ["BUS", "SBAHN"],
		"latitude": 48.35367,
		"longitude": 11.78602
	}
]`

// SampleDeparturesResponse is a departure board for Hauptbahnhof
const SampleDeparturesResponse = `[
	{
		"plannedDepartureTime": 1705312800000,
		"realtime": true,
		"delayInMinutes": 2,
		"realtimeDepartureTime": 1705312920000,
		"transportType": "UBAHN",
		"label": "U2",
		"divaId": "010U2",
		"network": "swm",
		"trainType": "",
		"destination": "Messestadt Ost",
		"cancelled": false,
		"sev": false,
		"platform": 2,
		"messages": [],
		"bannerHash": "",
		"occupancy": "LOW",
		"stopPointGlobalId": "de:09162:6:40:40"
	},
	{
		"plannedDepartureTime": 1705313100000,
		"realtime": true,
		"delayInMinutes": 0,
		"realtimeDepartureTime": 1705313100000,
		"transportType": "SBAHN",
		"label": "S8",
		"divaId": "92M08",
		"network": "ddb",
		"trainType": "",
		"destination": "Flughafen München",
		"cancelled": false,
		"sev": false,
		"platform": 1,
		"messages": ["Bauarbeiten zwischen Ismaning und Flughafen"],
		"bannerHash": "",
		"occupancy": "MEDIUM",
		"stopPointGlobalId": "de:09162:6:1:1"
	},
	{
		"plannedDepartureTime": 1705313400000,
		"realtime": false,
		"delayInMinutes": 0,
		"realtimeDepartureTime": 1705313400000,
		"transportType": "TRAM",
		"label": "19",
		"divaId": "02019",
		"network": "swm",
		"trainType": "",
		"destination": "Pasing",
		"cancelled": true,
		"sev": false,
		"messages": [],
		"bannerHash": "",
		"occupancy": "UNKNOWN",
		"stopPointGlobalId": "de:09162:6:71:71"
	}
]`

// SampleEmptyList is a valid response with no entries
const SampleEmptyList = `[]`

// SampleMalformedResponse cannot be decoded into a list
const SampleMalformedResponse = `{"error": "unexpected`
