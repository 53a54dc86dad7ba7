package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dog-breeds/internal/ports/upstream"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListBreeds(ctx context.Context) (upstream.Response, error) {
	args := m.Called(ctx)
	return args.Get(0).(upstream.Response), args.Error(1)
}

func (m *mockCatalog) GetBreed(ctx context.Context, id int) (upstream.Response, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(upstream.Response), args.Error(1)
}

func (m *mockCatalog) SearchBreeds(ctx context.Context, name string) (upstream.Response, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(upstream.Response), args.Error(1)
}

func (m *mockCatalog) BreedImages(ctx context.Context, breedID int) (upstream.Response, error) {
	args := m.Called(ctx, breedID)
	return args.Get(0).(upstream.Response), args.Error(1)
}

func newTestServer(t *testing.T, up upstream.Catalog) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/catalog", func(cr chi.Router) {
		RegisterRoutes(cr, NewService(up))
	})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, http.Header, string) {
	t.Helper()

	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, res.Header, string(body)
}

const breedsJSON = `[{"id":1,"name":"Affenpinscher"},{"id":2,"name":"Afghan Hound"}]`

func TestListBreeds_RelaysBodyVerbatim(t *testing.T) {
	up := new(mockCatalog)
	up.On("ListBreeds", mock.Anything).Return(upstream.Response{StatusCode: 200, Body: []byte(breedsJSON)}, nil)
	ts := newTestServer(t, up)

	st, h, body := get(t, ts.URL+"/catalog")

	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, breedsJSON, body)
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	up.AssertExpectations(t)
}

func TestListBreeds_ForwardsUpstreamStatus(t *testing.T) {
	up := new(mockCatalog)
	up.On("ListBreeds", mock.Anything).Return(upstream.Response{StatusCode: 503, Body: []byte("maintenance")}, nil)
	ts := newTestServer(t, up)

	st, _, body := get(t, ts.URL+"/catalog")

	assert.Equal(t, http.StatusServiceUnavailable, st)
	assert.Empty(t, body)
}

func TestListBreeds_TransportFailureIs500WithoutCause(t *testing.T) {
	up := new(mockCatalog)
	up.On("ListBreeds", mock.Anything).Return(upstream.Response{}, errors.New("dial tcp 1.2.3.4:443: connection refused"))
	ts := newTestServer(t, up)

	st, _, body := get(t, ts.URL+"/catalog")

	assert.Equal(t, http.StatusInternalServerError, st)
	assert.JSONEq(t, `{"error":"upstream unavailable"}`, body)
}

func TestGetBreed_CollapsesAnyNonSuccessTo404(t *testing.T) {
	for _, status := range []int{400, 401, 404, 429, 500, 502} {
		up := new(mockCatalog)
		up.On("GetBreed", mock.Anything, 42).Return(upstream.Response{StatusCode: status}, nil)
		ts := newTestServer(t, up)

		st, _, body := get(t, ts.URL+"/catalog/42")

		assert.Equal(t, http.StatusNotFound, st, "upstream status %d", status)
		assert.Empty(t, body)
	}
}

func TestGetBreed_Success(t *testing.T) {
	up := new(mockCatalog)
	up.On("GetBreed", mock.Anything, 3).Return(upstream.Response{
		StatusCode:  200,
		ContentType: "application/json; charset=utf-8",
		Body:        []byte(`{"id":3,"name":"African Hunting Dog"}`),
	}, nil)
	ts := newTestServer(t, up)

	st, h, body := get(t, ts.URL+"/catalog/3")

	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "application/json; charset=utf-8", h.Get("Content-Type"))
	assert.JSONEq(t, `{"id":3,"name":"African Hunting Dog"}`, body)
}

func TestGetBreed_NonIntegerIDIs400(t *testing.T) {
	up := new(mockCatalog)
	ts := newTestServer(t, up)

	st, _, body := get(t, ts.URL+"/catalog/beagle")

	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"error":"id invalid"}`, body)
	up.AssertNotCalled(t, "GetBreed", mock.Anything, mock.Anything)
}

func TestSearchBreeds_PassesDecodedName(t *testing.T) {
	up := new(mockCatalog)
	up.On("SearchBreeds", mock.Anything, "golden retriever").Return(upstream.Response{StatusCode: 200, Body: []byte(`[]`)}, nil)
	ts := newTestServer(t, up)

	st, _, body := get(t, ts.URL+"/catalog/search/golden%20retriever")

	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "[]", body)
	up.AssertExpectations(t)
}

func TestSearchBreeds_NotFoundAndTransport(t *testing.T) {
	up := new(mockCatalog)
	up.On("SearchBreeds", mock.Anything, "x").Return(upstream.Response{StatusCode: 403}, nil)
	up.On("SearchBreeds", mock.Anything, "y").Return(upstream.Response{}, errors.New("timeout"))
	ts := newTestServer(t, up)

	st, _, _ := get(t, ts.URL+"/catalog/search/x")
	assert.Equal(t, http.StatusNotFound, st)

	st, _, _ = get(t, ts.URL+"/catalog/search/y")
	assert.Equal(t, http.StatusInternalServerError, st)
}

func TestBreedImages(t *testing.T) {
	up := new(mockCatalog)
	up.On("BreedImages", mock.Anything, 5).Return(upstream.Response{StatusCode: 200, Body: []byte(`[{"url":"https://cdn/x.jpg"}]`)}, nil)
	up.On("BreedImages", mock.Anything, 6).Return(upstream.Response{StatusCode: 500}, nil)
	ts := newTestServer(t, up)

	st, _, body := get(t, ts.URL+"/catalog/5/images")
	assert.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[{"url":"https://cdn/x.jpg"}]`, body)

	st, _, _ = get(t, ts.URL+"/catalog/6/images")
	assert.Equal(t, http.StatusNotFound, st)
}
