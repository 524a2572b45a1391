package model

// AllCustomers — значение Customer, означающее «для всех клиентов».
const AllCustomers = "All Customers"

// Entry — строка таблицы соответствий.
type Entry struct {
	Code                 string `json:"sku"`                 // артикул
	CanonicalDescription string `json:"itemDescription"`     // внутреннее наименование
	CustomerDescription  string `json:"customerDescription"` // наименование у клиента
	CustomerScope        string `json:"customer"`            // клиент или AllCustomers
}

type Request struct {
	Description string `json:"description"`
	Customer    string `json:"customer,omitempty"` // пусто = клиент не указан
}

type Method string

const (
	MethodNone    Method = ""
	MethodExact   Method = "exact"
	MethodFuzzy   Method = "fuzzy"
	MethodPartial Method = "partial"
)

// Result: Found=false не несёт никакой информации о кандидатах.
type Result struct {
	Code   string   `json:"sku"`
	Found  bool     `json:"found"`
	Method Method   `json:"method,omitempty"`
	Score  *float64 `json:"score,omitempty"` // similarity для fuzzy, overlap для partial
}

// NotFound — единственный вариант «не нашли».
func NotFound() Result { return Result{} }

// BatchRow — одна строка загруженной таблицы и её результат.
type BatchRow struct {
	Row int `json:"row"` // порядковый номер записи (1-based)
	Request
	Result Result `json:"result"`
}

type BatchResult struct {
	Rows     []BatchRow `json:"rows"`
	Found    int        `json:"found"`
	NotFound int        `json:"notFound"`
}
