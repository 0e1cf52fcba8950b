package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestRequestSetsJSONContentType(t *testing.T) {
	var gotContentType, gotCustom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Custom")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger()).WithHeader("X-Custom", "yes")
	var out map[string]bool
	err := c.Request(context.Background(), http.MethodGet, "/anything", nil, &out)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "yes", gotCustom, "caller headers merge without dropping the default")
	require.True(t, out["ok"])
}

func TestRequestEncodesBody(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		received = string(buf)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.Request(context.Background(), http.MethodPost, "/things", map[string]string{"name": "x"}, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"x"}`, received)
}

func TestRequestMapsNon2xxToStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.Request(context.Background(), http.MethodGet, "/things/1", nil, nil)

	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Code)
	require.True(t, backend.IsNotFound(err))
}

func TestRequestMapsTransportFailureToNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.Request(context.Background(), http.MethodGet, "/things", nil, nil)

	var netErr *backend.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.False(t, backend.IsNotFound(err))
}

func TestRequestNoRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.Request(context.Background(), http.MethodGet, "/things", nil, nil)
	require.Error(t, err)
	require.Equal(t, 1, calls, "retry is the query layer's job, not the wrapper's")
	require.False(t, errors.Is(err, backend.ErrNotFound))
}
