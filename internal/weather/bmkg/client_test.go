package bmkg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastSendsFeedHeaders(t *testing.T) {
	var gotHeaders http.Header
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client())
	c.forecastURL = srv.URL

	payload, err := c.Forecast(context.Background(), "31.71.01.1001")
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.Equal(t, "adm4=31.71.01.1001", gotQuery)
	assert.Equal(t, "https://cuaca.bmkg.go.id/", gotHeaders.Get("Referer"))
	assert.Equal(t, "https://cuaca.bmkg.go.id", gotHeaders.Get("Origin"))
	assert.Contains(t, gotHeaders.Get("User-Agent"), "Mozilla/5.0")
}

func TestGetJSONNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.Client())
	c.quakeURL = srv.URL

	_, err := c.LatestQuake(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnexpectedStatus)
}

func TestGetJSONInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.Client())
	c.feltURL = srv.URL

	_, err := c.FeltQuakes(context.Background())
	assert.Error(t, err)
}

func TestNowcastReturnsRawBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<rss><channel></channel></rss>"))
	}))
	defer srv.Close()

	c := NewClient(srv.Client())
	c.nowcastURL = srv.URL

	data, err := c.Nowcast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<rss><channel></channel></rss>", string(data))
}
