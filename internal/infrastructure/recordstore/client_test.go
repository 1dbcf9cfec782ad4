package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// fakeAPI servidor de prueba que registra la última petición y responde con un cuerpo fijo.
type fakeAPI struct {
	status   int
	response string
	lastPath string
	lastBody map[string]any
	headers  http.Header
}

func (f *fakeAPI) start(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lastPath = r.URL.Path
		f.headers = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		f.lastBody = nil
		_ = json.Unmarshal(raw, &f.lastBody)
		status := f.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(f.response))
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{BaseURL: srv.URL + "/", ProjectID: "proj-1", PublicKey: "pk-1"})
	require.NoError(t, err)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Fetch
// ─────────────────────────────────────────────────────────────────────────────

func TestClient_Fetch_EnviaFiltrosYCabeceras(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"data":[{"Id":1,"Name":"Tornillo","current_stock":5}]}`}
	c := api.start(t)

	recs, err := c.Fetch(context.Background(), "product", FetchParams{
		Fields: []string{"Name"},
		Where:  []Filter{Eq("category", "Ferretería")},
		Limit:  20,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, json.Number("1"), recs[0]["Id"])

	assert.Equal(t, "/tables/product/fetch", api.lastPath)
	assert.Equal(t, "proj-1", api.headers.Get("X-Project-Id"))
	assert.Equal(t, "Bearer pk-1", api.headers.Get("Authorization"))

	where := api.lastBody["where"].([]any)
	require.Len(t, where, 1)
	f := where[0].(map[string]any)
	assert.Equal(t, "category", f["fieldName"])
	assert.Equal(t, OpExactMatch, f["operator"])
	assert.Equal(t, []any{"Ferretería"}, f["values"])
	assert.Equal(t, map[string]any{"limit": 20.0, "offset": 0.0}, api.lastBody["pagingInfo"])
}

func TestClient_Fetch_DataNullEsListaVacia(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"data":null}`}
	c := api.start(t)

	recs, err := c.Fetch(context.Background(), "product", FetchParams{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestClient_Fetch_SuccessFalse_EsRemoteError(t *testing.T) {
	api := &fakeAPI{response: `{"success":false,"message":"tabla no existe"}`}
	c := api.start(t)

	_, err := c.Fetch(context.Background(), "nope", FetchParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemote))
	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "tabla no existe", re.Message)
}

func TestClient_Fetch_HTTP500_EsRemoteError(t *testing.T) {
	api := &fakeAPI{status: http.StatusInternalServerError, response: `boom`}
	c := api.start(t)

	_, err := c.Fetch(context.Background(), "product", FetchParams{})
	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
	assert.True(t, errors.Is(err, domain.ErrRemote))
}

func TestClient_TransporteCaido_EsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: url})
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "product", FetchParams{})
	assert.True(t, errors.Is(err, domain.ErrRemote))
}

func TestNewClient_SinBaseURL(t *testing.T) {
	_, err := NewClient(Options{})
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID
// ─────────────────────────────────────────────────────────────────────────────

func TestClient_GetByID_DataNull_EsNotFound(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"data":null}`}
	c := api.start(t)

	_, err := c.GetByID(context.Background(), "product", "42", nil)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "/tables/product/records/42", api.lastPath)
}

// ─────────────────────────────────────────────────────────────────────────────
// Create / Update / Delete
// ─────────────────────────────────────────────────────────────────────────────

func TestClient_Create_DevuelveRegistros(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"results":[{"success":true,"data":{"Id":7,"Name":"A"}}]}`}
	c := api.start(t)

	out, err := c.Create(context.Background(), "product", []Record{{"Name": "A"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "7", asString(out[0]["Id"]))
	assert.Equal(t, []any{map[string]any{"Name": "A"}}, api.lastBody["records"])
}

func TestClient_Create_FalloParcial_EsBatchError(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"results":[
		{"success":true,"data":{"Id":1}},
		{"success":false,"message":"sku requerido"}
	]}`}
	c := api.start(t)

	_, err := c.Create(context.Background(), "product", []Record{{"Name": "A"}, {"Name": "B"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPartialBatch))
	assert.False(t, errors.Is(err, domain.ErrRemote))

	var be *BatchError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Succeeded)
	require.Len(t, be.Failures, 1)
	assert.Equal(t, 1, be.Failures[0].Index)
	assert.Equal(t, "sku requerido", be.Failures[0].Message)
}

func TestClient_Update_SinId_EsInvalidInput(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"results":[]}`}
	c := api.start(t)

	_, err := c.Update(context.Background(), "product", []Record{{"Name": "A"}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, api.lastPath, "no debe llegar a la red")
}

func TestClient_Delete_EnviaRecordIds(t *testing.T) {
	api := &fakeAPI{response: `{"success":true,"results":[{"success":true},{"success":true}]}`}
	c := api.start(t)

	err := c.Delete(context.Background(), "product", []string{"1", "abc"})
	require.NoError(t, err)
	assert.Equal(t, "/tables/product/delete", api.lastPath)
	assert.Equal(t, []any{1.0, "abc"}, api.lastBody["RecordIds"])
}
