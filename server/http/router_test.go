package serverhttp

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sku-mapper/internal/config"
	"sku-mapper/internal/middleware"
	"sku-mapper/internal/order"
	"sku-mapper/internal/skumap/model"
	"sku-mapper/internal/skumap/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()
	store := service.NewStore(filepath.Join(t.TempDir(), "sku_mapping.xlsx"), logger)
	orders := order.NewProcessor(store, order.NewERPSimulator(logger), logger)
	cfg := config.Config{AllowOrigins: []string{"*"}, MaxUploadMB: 1}

	srv := httptest.NewServer(NewRouter(cfg, logger, store, orders))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestResolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name      string
		req       model.Request
		wantCode  string
		wantFound bool
	}{
		{"exact customer match", model.Request{Description: "Red Widget", Customer: "ABC Manufacturing"}, "SKU-001", true},
		{"fuzzy", model.Request{Description: "Copper Wires"}, "SKU-005", true},
		{"not found", model.Request{Description: "Quantum Flux Capacitor"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/resolve", tt.req)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var got model.Result
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.wantFound, got.Found)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestResolveEndpoint_BadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/resolve", "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got struct {
		Sample  bool          `json:"sample"`
		Count   int           `json:"count"`
		Entries []model.Entry `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Sample)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, service.SampleEntries(), got.Entries)

	// после reload читается уже записанный образец
	reload := postJSON(t, srv.URL+"/catalog/reload", nil)
	require.Equal(t, http.StatusOK, reload.StatusCode)
	require.NoError(t, json.NewDecoder(reload.Body).Decode(&got))
	assert.False(t, got.Sample)
	assert.Equal(t, 5, got.Count)
}

func TestResolveBatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "items.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Description,Customer\nRed Widget,ABC Manufacturing\nSteel Rod 1m,\nQuantum Flux Capacitor,Acme\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/resolve/batch", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.BatchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Rows, 3)
	assert.Equal(t, 2, got.Found)
	assert.Equal(t, 1, got.NotFound)
	assert.Equal(t, "SKU-001", got.Rows[0].Result.Code)
	assert.Equal(t, "SKU-004", got.Rows[1].Result.Code)
	assert.Equal(t, "Acme", got.Rows[2].Customer)
}

func postBatch(t *testing.T, url, filename, content string, fields map[string]string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(url+"/resolve/batch", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func TestResolveBatchEndpoint_CatalogShapedUpload(t *testing.T) {
	srv := newTestServer(t)

	// колонка описания клиента не должна перехватить описание товара
	resp := postBatch(t, srv.URL, "items.csv",
		"SKU,ItemDescription,CustomerDescription,Customer\n"+
			"?,Steel Rod 1m,Copper Wire,All Customers\n", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.BatchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Steel Rod 1m", got.Rows[0].Description)
	assert.Equal(t, "All Customers", got.Rows[0].Customer)
	assert.Equal(t, "SKU-004", got.Rows[0].Result.Code)
}

func TestResolveBatchEndpoint_HeaderRowOutOfRange(t *testing.T) {
	srv := newTestServer(t)

	resp := postBatch(t, srv.URL, "items.csv", "Description,Customer\nRed Widget,ABC Manufacturing\n",
		map[string]string{"header_row": "5"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResolveBatchEndpoint_UnsupportedFile(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "items.txt")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("whatever"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/resolve/batch", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrdersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/orders", "text/plain",
		strings.NewReader("Customer: XYZ Industries\nItem: Blue Component\nQty: 3\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got order.Outcome
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "SKU-002", got.Match.Code)
	assert.Equal(t, 3, got.Order.Quantity)
	assert.True(t, strings.HasPrefix(got.Invoice.Number, "INV-"))
}

func TestOrdersEndpoint_Exception(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/orders", "text/plain",
		strings.NewReader("Customer: Acme\nItem: Quantum Flux Capacitor\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp2, err := http.Post(srv.URL+"/orders", "text/plain", strings.NewReader("   "))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
