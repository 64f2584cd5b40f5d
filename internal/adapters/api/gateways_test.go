package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/payload"
	"github.com/MHarnil/dwarkesh-admin/pkg/restclient"
)

type recordedRequest struct {
	method      string
	path        string
	requestID   string
	contentType string
	body        []byte
}

// newBackend spins up a fake backend returning the given status and body for
// every request and records what it received.
func newBackend(t *testing.T, status int, responseBody string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			requestID:   r.Header.Get("X-Request-ID"),
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func newTestClient(t *testing.T, baseURL string) *restclient.Client {
	t.Helper()
	client, err := restclient.NewClient(restclient.Config{BaseURL: baseURL}, zap.NewNop().Sugar())
	require.NoError(t, err)
	return client
}

func TestPropertyTypeGatewayListUnwrapsEnvelope(t *testing.T) {
	server, requests := newBackend(t, http.StatusOK,
		`{"data":[{"_id":"t1","name":"Residential"},{"_id":"t2","name":"Commercial"}]}`)
	g := NewPropertyTypeGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	types, err := g.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.PropertyType{
		{ID: "t1", Name: "Residential"},
		{ID: "t2", Name: "Commercial"},
	}, types)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/api/property-types", req.path)
	assert.NotEmpty(t, req.requestID)
}

func TestPropertyTypeGatewayCreateAndUpdate(t *testing.T) {
	server, requests := newBackend(t, http.StatusCreated, `{}`)
	g := NewPropertyTypeGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	require.NoError(t, g.Create(context.Background(), "Villas"))
	require.NoError(t, g.Update(context.Background(), "t1", "Plots"))

	require.Len(t, *requests, 2)
	create, update := (*requests)[0], (*requests)[1]

	assert.Equal(t, http.MethodPost, create.method)
	assert.JSONEq(t, `{"name":"Villas"}`, string(create.body))

	assert.Equal(t, http.MethodPut, update.method)
	assert.Equal(t, "/api/property-types/t1", update.path)
	assert.JSONEq(t, `{"name":"Plots"}`, string(update.body))
}

func TestPropertyGatewayListDecodesBareArray(t *testing.T) {
	server, requests := newBackend(t, http.StatusOK,
		`[{"_id":"p1","title":"Skyline","propertyType":"t1"},
		  {"_id":"p2","title":"Riverside","propertyType":{"_id":"t2","name":"Commercial"}}]`)
	g := NewPropertyGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	properties, err := g.List(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, domain.TypeRef{ID: "t1"}, properties[0].PropertyType)
	assert.Equal(t, domain.TypeRef{ID: "t2", Name: "Commercial"}, properties[1].PropertyType)
	assert.Equal(t, "/api/properties", (*requests)[0].path)
}

func TestPropertyGatewaySendsMultipart(t *testing.T) {
	server, requests := newBackend(t, http.StatusOK, `{}`)
	g := NewPropertyGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	sub := &payload.Submission{
		Body:        []byte("--x--"),
		ContentType: "multipart/form-data; boundary=x",
	}
	require.NoError(t, g.Create(context.Background(), sub))
	require.NoError(t, g.Update(context.Background(), "p1", sub))

	require.Len(t, *requests, 2)
	create, update := (*requests)[0], (*requests)[1]

	assert.Equal(t, http.MethodPost, create.method)
	assert.Equal(t, "/api/properties", create.path)
	assert.Equal(t, sub.ContentType, create.contentType)
	assert.Equal(t, sub.Body, create.body)

	assert.Equal(t, http.MethodPut, update.method)
	assert.Equal(t, "/api/properties/p1", update.path)
}

func TestPropertyGatewayDelete(t *testing.T) {
	server, requests := newBackend(t, http.StatusOK, ``)
	g := NewPropertyGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	require.NoError(t, g.Delete(context.Background(), "p1"))
	assert.Equal(t, http.MethodDelete, (*requests)[0].method)
	assert.Equal(t, "/api/properties/p1", (*requests)[0].path)
}

func TestContactGatewayListAndDelete(t *testing.T) {
	server, requests := newBackend(t, http.StatusOK,
		`{"data":[{"_id":"c1","firstName":"Asha","lastName":"Patel","email":"asha@example.com"}]}`)
	g := NewContactGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	contacts, err := g.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Asha", contacts[0].FirstName)

	require.NoError(t, g.Delete(context.Background(), "c1"))
	assert.Equal(t, "/api/contact/c1", (*requests)[1].path)
}

func TestGatewaySurfacesServerMessage(t *testing.T) {
	server, _ := newBackend(t, http.StatusBadRequest, `{"message":"title is required"}`)
	g := NewPropertyGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	_, err := g.List(context.Background())
	require.Error(t, err)

	var serverErr *restclient.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadRequest, serverErr.Status)
	assert.Equal(t, "title is required", serverErr.Message)
	assert.Contains(t, err.Error(), "title is required")
}

func TestGatewayHonorsContextCancellation(t *testing.T) {
	server, _ := newBackend(t, http.StatusOK, `[]`)
	g := NewPropertyGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGatewayRejectsMalformedListBody(t *testing.T) {
	server, _ := newBackend(t, http.StatusOK, `{"not":"an array"}`)
	g := NewPropertyGateway(newTestClient(t, server.URL), zap.NewNop().Sugar())

	_, err := g.List(context.Background())
	require.Error(t, err)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}
