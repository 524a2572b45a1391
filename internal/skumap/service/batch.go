package service

import "sku-mapper/internal/skumap/model"

// ResolveAll прогоняет запросы по одному снимку каталога.
// firstRow — номер, который получит первая запись.
func (r *Resolver) ResolveAll(reqs []model.Request, firstRow int) model.BatchResult {
	out := model.BatchResult{Rows: make([]model.BatchRow, 0, len(reqs))}
	for i, req := range reqs {
		res := r.Resolve(req)
		if res.Found {
			out.Found++
		} else {
			out.NotFound++
		}
		out.Rows = append(out.Rows, model.BatchRow{Row: firstRow + i, Request: req, Result: res})
	}
	return out
}
