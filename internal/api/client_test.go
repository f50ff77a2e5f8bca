package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mobil-koeln/fahrinfo/internal/testutil"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	testutil.AssertTrue(t, client.httpClient != nil)
	testutil.AssertEqual(t, client.baseURL, BaseURL)
	testutil.AssertEqual(t, client.httpClient.Timeout, defaultTimeout)
	testutil.AssertEqual(t, client.StationsURL(), "https://www.mvg.de/.rest/zdm/stations")
}

func TestNewClient_WithTimeout(t *testing.T) {
	client := NewClient(WithTimeout(30 * time.Second))
	testutil.AssertEqual(t, client.httpClient.Timeout, 30*time.Second)
}

func TestNewClient_WithHTTPClient(t *testing.T) {
	customClient := &http.Client{Timeout: 5 * time.Second}
	client := NewClient(WithHTTPClient(customClient))
	testutil.AssertEqual(t, client.httpClient, customClient)
}

func TestNewClient_WithStationsURL(t *testing.T) {
	client := NewClient(WithBaseURL("http://localhost:1"), WithStationsURL("http://mirror/stations.json"))
	testutil.AssertEqual(t, client.StationsURL(), "http://mirror/stations.json")
}

func TestListStations_Success(t *testing.T) {
	ms := testutil.NewJSONServer(map[string]string{EndpointStations: testutil.SampleStationsResponse})
	defer ms.Close()

	client := NewClient(WithBaseURL(ms.URL))

	stations, err := client.ListStations(context.Background())
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, stations, 5)

	testutil.AssertEqual(t, stations[0].Name, "Hauptbahnhof")
	testutil.AssertEqual(t, stations[0].ID, "de:09162:6")
	testutil.AssertEqual(t, stations[0].Abbreviation, "HBF")
	testutil.AssertEqual(t, stations[1].Name, "Ostbahnhof")
	testutil.AssertEqual(t, stations[1].Abbreviation, "")
	testutil.AssertTrue(t, stations[3].HasProduct("TRAM"))

	req := ms.LastRequest()
	testutil.AssertEqual(t, req.Method, http.MethodGet)
	testutil.AssertEqual(t, req.Header.Get("Accept"), "application/json")
}

func TestListStations_CorrelationID(t *testing.T) {
	ms := testutil.NewJSONServer(map[string]string{EndpointStations: testutil.SampleEmptyList})
	defer ms.Close()

	client := NewClient(WithBaseURL(ms.URL))
	_, err := client.ListStations(context.Background())
	testutil.AssertNil(t, err)
	first := ms.LastRequest().Header.Get("x-correlation-id")

	_, err = client.ListStations(context.Background())
	testutil.AssertNil(t, err)
	second := ms.LastRequest().Header.Get("x-correlation-id")

	_, err = uuid.Parse(first)
	testutil.AssertNil(t, err)
	testutil.AssertTrue(t, first != second)
}

func TestListDepartures_Success(t *testing.T) {
	ms := testutil.NewJSONServer(map[string]string{EndpointDepartures: testutil.SampleDeparturesResponse})
	defer ms.Close()

	client := NewClient(WithBaseURL(ms.URL))

	departures, err := client.ListDepartures(context.Background(), "de:09162:6")
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, departures, 3)

	testutil.AssertEqual(t, ms.LastRequest().URL.Query().Get("globalId"), "de:09162:6")

	u2 := departures[0]
	testutil.AssertEqual(t, u2.Label, "U2")
	testutil.AssertEqual(t, u2.DelayMinutes, 2)
	testutil.AssertEqual(t, *u2.Platform, 2)
	testutil.AssertEqual(t, u2.Realtime.Sub(u2.Planned), 2*time.Minute)

	testutil.AssertLen(t, departures[1].Messages, 1)
	testutil.AssertTrue(t, departures[2].Cancelled)
	testutil.AssertTrue(t, departures[2].Platform == nil)
}

func TestListDepartures_EmptyStationID(t *testing.T) {
	client := NewClient()

	departures, err := client.ListDepartures(context.Background(), "")
	testutil.AssertError(t, err)
	testutil.AssertLen(t, departures, 0)

	var ve *ValidationError
	testutil.AssertTrue(t, errors.As(err, &ve))
	testutil.AssertEqual(t, ve.Field, "globalId")
}

func TestListDepartures_Failures(t *testing.T) {
	tests := []struct {
		name   string
		server *testutil.MockServer
		target error
	}{
		{
			name:   "server error",
			server: testutil.NewStatusServer(http.StatusInternalServerError),
			target: ErrServerError,
		},
		{
			name:   "unknown station",
			server: testutil.NewStatusServer(http.StatusNotFound),
			target: ErrNotFound,
		},
		{
			name:   "bad request",
			server: testutil.NewStatusServer(http.StatusBadRequest),
			target: ErrInvalidRequest,
		},
		{
			name:   "malformed body",
			server: testutil.NewJSONServer(map[string]string{EndpointDepartures: testutil.SampleMalformedResponse}),
			target: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.server.Close()
			client := NewClient(WithBaseURL(tt.server.URL))

			departures, err := client.ListDepartures(context.Background(), "de:09162:6")
			testutil.AssertError(t, err)
			testutil.AssertLen(t, departures, 0)
			testutil.AssertErrorIs(t, err, tt.target)

			var fe *FetchError
			testutil.AssertTrue(t, errors.As(err, &fe))
			testutil.AssertEqual(t, fe.Op, "list departures")
			testutil.AssertContains(t, fe.URL, tt.server.URL)
		})
	}
}

func TestListStations_APIErrorDetails(t *testing.T) {
	ms := testutil.NewStatusServer(http.StatusServiceUnavailable)
	defer ms.Close()

	client := NewClient(WithBaseURL(ms.URL))
	_, err := client.ListStations(context.Background())

	var apiErr *APIError
	testutil.AssertTrue(t, errors.As(err, &apiErr))
	testutil.AssertEqual(t, apiErr.StatusCode, http.StatusServiceUnavailable)
	testutil.AssertEqual(t, apiErr.Endpoint, EndpointStations)
}

func TestClient_ContextCancellation(t *testing.T) {
	ms := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(testutil.SampleDeparturesResponse))
	})
	defer ms.Close()

	client := NewClient(WithBaseURL(ms.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListDepartures(ctx, "de:09162:6")
	testutil.AssertErrorIs(t, err, ErrTimeout)
}

func TestClient_TransportTimeout(t *testing.T) {
	release := make(chan struct{})
	ms := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer ms.Close()
	defer close(release)

	client := NewClient(WithBaseURL(ms.URL), WithTimeout(20*time.Millisecond))

	_, err := client.ListDepartures(context.Background(), "de:09162:6")
	testutil.AssertErrorIs(t, err, ErrTimeout)
}

func TestExtractEndpoint(t *testing.T) {
	testutil.AssertEqual(t, extractEndpoint("https://www.mvg.de/api/fib/v2/departure?globalId=x"), EndpointDepartures)
	testutil.AssertEqual(t, extractEndpoint("://bad"), "://bad")
}
