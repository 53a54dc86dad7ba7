package httpclient

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	c, err := NewWithBaseURL("https://api.thedogapi.com/v1/", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.thedogapi.com/v1", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)

	got, err := c.resolveURL("breeds/search")
	require.NoError(t, err)
	assert.Equal(t, "https://api.thedogapi.com/v1/breeds/search", got)

	got, err = c.resolveURL("http://other.local/x")
	require.NoError(t, err)
	assert.Equal(t, "http://other.local/x", got)

	_, err = NewWithTransport(time.Second, nil).resolveURL("breeds")
	assert.Error(t, err)

	_, err = c.resolveURL("  ")
	assert.Error(t, err)
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("::not-a-url", time.Second, nil)
	assert.Error(t, err)
}

func TestDo_RelaysStatusAndBody(t *testing.T) {
	var gotQuery url.Values
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Get("x-api-key")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"message":"short and stout"}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second, nil)
	require.NoError(t, err)

	res, err := c.Do(context.Background(), http.MethodGet, "breeds/search",
		url.Values{"q": {"golden retriever"}},
		map[string]string{"x-api-key": "k", " ": "skip"})
	require.NoError(t, err)

	assert.False(t, res.OK())
	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.JSONEq(t, `{"message":"short and stout"}`, string(res.Body))
	assert.Equal(t, "golden retriever", gotQuery.Get("q"))
	assert.Equal(t, "k", gotHeader)
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewWithBaseURL(base, time.Second, nil)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "breeds", nil, nil)
	require.Error(t, err)
}

func TestDo_NilClient(t *testing.T) {
	var c *Client
	_, err := c.Do(context.Background(), http.MethodGet, "x", nil, nil)
	assert.Error(t, err)
}

func TestDo_BodyAtLimitIsKept(t *testing.T) {
	body := bytes.Repeat([]byte("a"), MaxBodyBytes)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, 5*time.Second, nil)
	require.NoError(t, err)

	res, err := c.Do(context.Background(), http.MethodGet, "breeds", nil, nil)
	require.NoError(t, err)
	assert.Len(t, res.Body, MaxBodyBytes)
}

func TestDo_OversizedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), MaxBodyBytes+1024))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, 5*time.Second, nil)
	require.NoError(t, err)

	res, err := c.Do(context.Background(), http.MethodGet, "breeds", nil, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrBodyTooLarge))
}

func TestReadAtMost(t *testing.T) {
	b, err := readAtMost(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(b))

	_, err = readAtMost(strings.NewReader("123456"), 5)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}
