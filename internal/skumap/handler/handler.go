package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sku-mapper/internal/fileio"
	"sku-mapper/internal/order"
	"sku-mapper/internal/skumap/model"
	"sku-mapper/internal/skumap/service"
)

// Колонки загружаемой таблицы позиций по умолчанию (варианты через "|").
const (
	defaultDescCol     = "Item Description|Description|Item|Product"
	defaultCustomerCol = "Customer|Client|Company"
)

// Resolve: POST /resolve {"description","customer"}. «Не найдено» — это 200 с found=false.
func Resolve(store *service.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.Request
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, store.Resolve(req))
	}
}

// ResolveBatch: POST /resolve/batch, multipart file (+header_row, desc_col, customer_col).
func ResolveBatch(store *service.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := zerolog.Ctx(r.Context())

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, r, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		records, err := fileio.ReadAnyMaps(file, header.Filename, headerRow)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "failed to read file: "+err.Error())
			return
		}

		descCol := orDefault(r.FormValue("desc_col"), defaultDescCol)
		customerCol := orDefault(r.FormValue("customer_col"), defaultCustomerCol)

		reqs := make([]model.Request, 0, len(records))
		for _, rec := range records {
			req := model.Request{}
			if k := fileio.ResolveKey(rec, descCol); k != "" {
				req.Description = strings.TrimSpace(rec[k])
			}
			if k := fileio.ResolveKey(rec, customerCol); k != "" {
				req.Customer = strings.TrimSpace(rec[k])
			}
			reqs = append(reqs, req)
		}

		res := store.Resolver().ResolveAll(reqs, 1)
		writeJSON(w, r, http.StatusOK, res)

		log.Info().
			Str("file", header.Filename).
			Int("rows", len(reqs)).
			Int("found", res.Found).
			Int("not_found", res.NotFound).
			Dur("elapsed", time.Since(start)).
			Msg("batch resolve done")
	}
}

type catalogView struct {
	Source  string        `json:"source"`
	Sample  bool          `json:"sample"`
	Count   int           `json:"count"`
	Entries []model.Entry `json:"entries"`
}

func viewOf(c *service.Catalog) catalogView {
	return catalogView{Source: c.Source(), Sample: c.IsSample(), Count: c.Len(), Entries: c.Entries()}
}

// Catalog: GET /catalog — текущий снимок.
func Catalog(store *service.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, viewOf(store.Current()))
	}
}

// Reload: POST /catalog/reload — перечитать файл и подменить снимок.
func Reload(store *service.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := store.Reload()
		zerolog.Ctx(r.Context()).Info().Int("entries", c.Len()).Bool("sample", c.IsSample()).Msg("catalog reloaded")
		writeJSON(w, r, http.StatusOK, viewOf(c))
	}
}

type orderException struct {
	Error string            `json:"error"`
	Order order.ParsedOrder `json:"order"`
	Match model.Result      `json:"match"`
}

// Order: POST /orders, тело — текст заказа. Без артикула — 422 (исключение).
func Order(p *order.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "read body: "+err.Error())
			return
		}

		out, err := p.Process(r.Context(), string(body))
		switch {
		case err == nil:
			writeJSON(w, r, http.StatusOK, out)
		case errors.Is(err, order.ErrEmptyDocument):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrSKUNotFound):
			writeJSON(w, r, http.StatusUnprocessableEntity, orderException{Error: err.Error(), Order: out.Order, Match: out.Match})
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("order processing failed")
			writeError(w, r, http.StatusInternalServerError, err.Error())
		}
	}
}
