package order

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"sku-mapper/internal/utils"
)

const (
	UnknownCustomer = "Unknown Customer"
	UnknownItem     = "Unknown Item"
)

// ParsedOrder — поля заказа, вытащенные из текста документа.
type ParsedOrder struct {
	Customer  string           `json:"customer"`
	Item      string           `json:"item"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	PONumber  string           `json:"poNumber,omitempty"`
	OrderDate string           `json:"orderDate,omitempty"`
}

// Для каждого поля шаблоны пробуются по порядку, значение — первая группа.
var (
	customerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:customer|client|company)(?:\s+name)?[:\s]+([^\n\r]+)`),
		regexp.MustCompile(`(?im)^\s*(?:bill\s+to|sold\s+to)[:\s]+([^\n\r]+)`),
		regexp.MustCompile(`(?im)^\s*from[:\s]+([^\n\r]+)`),
	}
	itemPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:part|item)\s+description[:\s]+([^\n\r]+)`),
		regexp.MustCompile(`(?im)^\s*(?:item|description|product)[:\s]+([^\n\r]+)`),
	}
	quantityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:qty|quantity)[:\s]*(\d+)`),
		regexp.MustCompile(`(?i)\bunits?[:\s]*(\d+)`),
		regexp.MustCompile(`(?i)\b(\d+)\s*(?:pcs|pieces|units?)\b`),
	}
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:unit\s+)?(?:price|amount|total)[:\s]*[$€£]?\s*(\d[\d,]*(?:\.\d+)?)`),
		regexp.MustCompile(`[$€£]\s*(\d[\d,]*(?:\.\d+)?)`),
	}
	poPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:po|purchase\s+order)(?:[ \t]*(?:number|no\.?|#))?[ \t#:]+([A-Za-z0-9][A-Za-z0-9-]*)`),
		regexp.MustCompile(`(?i)\border[ \t]+number[ \t:]*([A-Za-z0-9][A-Za-z0-9-]*)`),
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:order\s+)?date[:\s]+([^\n\r]+)`),
		regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
		regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`),
	}
)

// Parse извлекает поля заказа из текста. Не падает: чего нет — остаётся по умолчанию.
func Parse(text string) ParsedOrder {
	o := ParsedOrder{
		Customer:  firstMatch(text, customerPatterns),
		Item:      firstMatch(text, itemPatterns),
		Quantity:  1,
		PONumber:  firstMatch(text, poPatterns),
		OrderDate: firstMatch(text, datePatterns),
	}
	if o.Customer == "" {
		o.Customer = UnknownCustomer
	}
	if o.Item == "" {
		o.Item = UnknownItem
	}
	if q, err := strconv.Atoi(firstMatch(text, quantityPatterns)); err == nil && q > 0 {
		o.Quantity = q
	}
	if p, ok := utils.ParseAmount(firstMatch(text, pricePatterns)); ok {
		o.Price = &p
	}
	return o
}

func firstMatch(text string, patterns []*regexp.Regexp) string {
	for _, rx := range patterns {
		if m := rx.FindStringSubmatch(text); len(m) > 1 {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}
