package service

import (
	"strings"

	"github.com/rs/zerolog"

	"sku-mapper/internal/skumap/model"
)

const (
	// FuzzyThreshold — минимальная схожесть для fuzzy (включительно).
	FuzzyThreshold = 0.8
	// PartialThreshold — минимальное пересечение слов (Jaccard, включительно).
	PartialThreshold = 0.5
	// штраф за чужого клиента в fuzzy
	customerPenalty = 0.5
)

// Resolver сопоставляет описание позиции с артикулом по снимку каталога.
// Безопасен для конкурентного использования: каталог только читается.
type Resolver struct {
	catalog *Catalog
	log     zerolog.Logger
}

func NewResolver(c *Catalog, logger zerolog.Logger) *Resolver {
	if c == nil {
		c = NewCatalog(nil)
	}
	return &Resolver{catalog: c, log: logger}
}

func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Resolve — каскад exact → fuzzy → partial; следующий этап только если предыдущий ничего не дал.
func (r *Resolver) Resolve(req model.Request) model.Result {
	desc := strings.ToLower(req.Description)
	customer := strings.ToLower(req.Customer)

	log := r.log.With().Str("item", req.Description).Str("customer", req.Customer).Logger()

	if code, ok := r.exact(desc, customer); ok {
		log.Debug().Str("sku", code).Msg("exact match")
		return model.Result{Code: code, Found: true, Method: model.MethodExact}
	}

	if code, score, ok := r.fuzzy(desc, customer); ok {
		log.Info().Str("sku", code).Float64("score", score).Msg("fuzzy match")
		return model.Result{Code: code, Found: true, Method: model.MethodFuzzy, Score: &score}
	}

	if code, overlap, ok := r.partial(desc); ok {
		log.Info().Str("sku", code).Float64("overlap", overlap).Msg("partial match")
		return model.Result{Code: code, Found: true, Method: model.MethodPartial, Score: &overlap}
	}

	log.Warn().Msg("no sku mapping found")
	return model.NotFound()
}

// exact: сначала описание клиента + точное (не вхождение!) совпадение клиента,
// затем внутреннее наименование без учёта клиента.
func (r *Resolver) exact(desc, customer string) (string, bool) {
	if customer != "" {
		for _, e := range r.catalog.entries {
			if strings.ToLower(e.CustomerDescription) == desc && strings.ToLower(e.CustomerScope) == customer {
				return e.Code, true
			}
		}
	}
	for _, e := range r.catalog.entries {
		if strings.ToLower(e.CanonicalDescription) == desc {
			return e.Code, true
		}
	}
	return "", false
}

// fuzzy: лучший по схожести, заменяем только строго большим и не ниже порога,
// так что при равенстве остаётся более ранняя строка.
func (r *Resolver) fuzzy(desc, customer string) (string, float64, bool) {
	bestCode, best, found := "", 0.0, false
	for _, e := range r.catalog.entries {
		score := max(
			similarity(desc, strings.ToLower(e.CanonicalDescription)),
			similarity(desc, strings.ToLower(e.CustomerDescription)),
		)
		if customer != "" && foreignScope(e.CustomerScope, customer) {
			score *= customerPenalty
		}
		if score > best && score >= FuzzyThreshold {
			bestCode, best, found = e.Code, score, true
		}
	}
	return bestCode, best, found
}

// foreignScope: строка привязана к конкретному клиенту, и его имя не содержит customer.
// Здесь именно вхождение, в отличие от exact.
func foreignScope(scope, customer string) bool {
	s := strings.ToLower(scope)
	if s == strings.ToLower(model.AllCustomers) {
		return false
	}
	return !strings.Contains(s, customer)
}

// partial: первая по порядку строка с пересечением слов >= порога, без поиска лучшей.
func (r *Resolver) partial(desc string) (string, float64, bool) {
	words := tokenSet(desc)
	for _, e := range r.catalog.entries {
		overlap := max(
			jaccard(words, tokenSet(strings.ToLower(e.CanonicalDescription))),
			jaccard(words, tokenSet(strings.ToLower(e.CustomerDescription))),
		)
		if overlap >= PartialThreshold {
			return e.Code, overlap, true
		}
	}
	return "", 0, false
}
