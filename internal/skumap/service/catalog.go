package service

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"sku-mapper/internal/fileio"
	"sku-mapper/internal/skumap/model"
)

// Заголовки файла соответствий (порядок колонок при записи).
var catalogHeaders = []string{"SKU", "ItemDescription", "CustomerDescription", "Customer"}

// Допустимые варианты заголовков при чтении.
var (
	codeAliases     = []string{"SKU", "Code", "Catalog Code"}
	canonicalAlias  = []string{"ItemDescription", "Description"}
	customerDescAls = []string{"CustomerDescription", "Customer Item Description"}
	scopeAliases    = []string{"Customer", "Customer Scope", "Scope"}
)

// ErrMalformedRow — строка с данными, но без артикула.
var ErrMalformedRow = errors.New("malformed catalog row")

// Catalog — неизменяемый снимок таблицы соответствий. После загрузки
// entries не меняются; перезагрузка создаёт новый Catalog.
type Catalog struct {
	entries []model.Entry
	source  string
	sample  bool
}

// NewCatalog строит снимок из готовых строк (копия среза).
func NewCatalog(entries []model.Entry) *Catalog {
	return &Catalog{entries: append([]model.Entry(nil), entries...)}
}

// SampleEntries — встроенная демо-таблица на 5 позиций.
func SampleEntries() []model.Entry {
	return []model.Entry{
		{Code: "SKU-001", CanonicalDescription: "Red Steel Widget 10kg", CustomerDescription: "Red Widget", CustomerScope: "ABC Manufacturing"},
		{Code: "SKU-002", CanonicalDescription: "Blue Aluminum Component 5kg", CustomerDescription: "Blue Component", CustomerScope: "XYZ Industries"},
		{Code: "SKU-003", CanonicalDescription: "Green Plastic Part", CustomerDescription: "Green Part", CustomerScope: "DEF Ltd"},
		{Code: "SKU-004", CanonicalDescription: "Steel Rod 1m", CustomerDescription: "Steel Rod", CustomerScope: model.AllCustomers},
		{Code: "SKU-005", CanonicalDescription: "Copper Wire 100m", CustomerDescription: "Copper Wire", CustomerScope: model.AllCustomers},
	}
}

func (c *Catalog) Len() int { return len(c.entries) }

// Entries возвращает копию строк в порядке загрузки.
func (c *Catalog) Entries() []model.Entry {
	return append([]model.Entry(nil), c.entries...)
}

func (c *Catalog) Source() string { return c.source }

// IsSample — true, если снимок собран из встроенной демо-таблицы.
func (c *Catalog) IsSample() bool { return c.sample }

// LoadCatalog читает таблицу соответствий из path. Ошибок наружу не отдаёт:
// если файла нет или он битый, берётся встроенная таблица и записывается в path.
func LoadCatalog(path string, logger zerolog.Logger) *Catalog {
	log := logger.With().Str("catalog", path).Logger()

	entries, err := readCatalog(path)
	if err == nil {
		log.Info().Int("entries", len(entries)).Msg("sku mapping loaded")
		return &Catalog{entries: entries, source: path}
	}

	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Msg("sku mapping file not found, creating sample mapping")
	} else {
		log.Warn().Err(err).Msg("sku mapping unusable, falling back to sample mapping")
	}

	sample := SampleEntries()
	if werr := writeCatalog(path, sample); werr != nil {
		log.Warn().Err(werr).Msg("sample mapping not persisted")
	} else {
		log.Info().Msg("sample sku mapping created")
	}
	return &Catalog{entries: sample, source: path, sample: true}
}

func readCatalog(path string) ([]model.Entry, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path: %w", os.ErrNotExist)
	}
	t, err := fileio.ReadFile(path, 1)
	if err != nil {
		return nil, err
	}

	cols := make([]string, 0, 4)
	for i, aliases := range [][]string{codeAliases, canonicalAlias, customerDescAls, scopeAliases} {
		h, ok := fileio.FindHeader(t.Headers, aliases...)
		if !ok {
			return nil, fmt.Errorf("missing column %q", catalogHeaders[i])
		}
		cols = append(cols, h)
	}

	entries := make([]model.Entry, 0, len(t.Records))
	for i, rec := range t.Records {
		code := strings.TrimSpace(rec[cols[0]])
		if code == "" {
			return nil, fmt.Errorf("row %d: %w", t.Lines[i], ErrMalformedRow)
		}
		entries = append(entries, model.Entry{
			Code:                 code,
			CanonicalDescription: rec[cols[1]],
			CustomerDescription:  rec[cols[2]],
			CustomerScope:        rec[cols[3]],
		})
	}
	return entries, nil
}

func writeCatalog(path string, entries []model.Entry) error {
	if path == "" {
		return errors.New("empty catalog path")
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Code, e.CanonicalDescription, e.CustomerDescription, e.CustomerScope})
	}
	return fileio.WriteFile(path, catalogHeaders, rows)
}
