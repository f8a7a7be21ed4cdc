package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSubreddit(t *testing.T) {
	var gotPath string
	var gotQuery string
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"data": {"after": "t3_x", "children": [{"kind": "t3", "data": {"id": "p1"}}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0", 5*time.Second)
	listing, err := client.FetchSubreddit(context.Background(), "golang", "hot", 25, "", "day")
	require.NoError(t, err)

	assert.Equal(t, "/r/golang/hot.json", gotPath)
	assert.Equal(t, "limit=25", gotQuery)
	assert.Equal(t, "test-agent/1.0", gotUA)
	assert.Equal(t, "t3_x", ListingAfter(listing))
}

func TestFetchSubredditTopTimeFilter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0", 5*time.Second)
	_, err := client.FetchSubreddit(context.Background(), "golang", "top", 500, "t3_prev", "week")
	require.NoError(t, err)

	// limit capped, after forwarded, t only sent for the top sort
	assert.Equal(t, "after=t3_prev&limit=100&t=week", gotQuery)
}

func TestFetchPostComments(t *testing.T) {
	var gotPath string
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"data": {}}, {"data": {"children": []}}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0", 5*time.Second)
	payload, err := client.FetchPostComments(context.Background(), "golang", "abc123", 50)
	require.NoError(t, err)

	assert.Equal(t, "/r/golang/comments/abc123.json", gotPath)
	assert.Equal(t, "depth=10&limit=50&showmore=false", gotQuery)
	assert.Len(t, payload.Array(), 2)
}

func TestFetchUser(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data": {"children": []}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0", 5*time.Second)
	_, err := client.FetchUser(context.Background(), "someone", "submitted", "new", 25, "")
	require.NoError(t, err)
	assert.Equal(t, "/user/someone/submitted.json", gotPath)
}

func TestFetchSubredditAutocomplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"children": [
			{"data": {"display_name": "golang", "title": "The Go Programming Language", "subscribers": 250000}},
			{"data": {"title": "no display name"}},
			{"data": {"display_name": "golang_jobs", "subscribers": 9000}}
		]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0", 5*time.Second)
	results, err := client.FetchSubredditAutocomplete(context.Background(), "gol", 8)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "golang", results[0].Name)
	assert.Equal(t, int64(250000), results[0].Subscribers)
	assert.Equal(t, "golang_jobs", results[1].Name)
}

func TestGetJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0", 5*time.Second)
	_, err := client.FetchSubreddit(context.Background(), "doesnotexist", "hot", 25, "", "")
	assert.Error(t, err)
}
