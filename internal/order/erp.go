package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Document — документ, «созданный» в ERP.
type Document struct {
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Line — то, что уходит в заказ покупателя.
type Line struct {
	Customer string
	Item     string
	SKU      string
	Quantity int
	Price    *decimal.Decimal // цена за единицу, nil — не указана
}

// ERPSimulator имитирует цепочку SO → DN → INV. Номер: PREFIX-yyyymmddHHMMSS-xxxxxx.
type ERPSimulator struct {
	log zerolog.Logger
	now func() time.Time
}

func NewERPSimulator(logger zerolog.Logger) *ERPSimulator {
	return &ERPSimulator{log: logger, now: time.Now}
}

func (e *ERPSimulator) CreateSalesOrder(ctx context.Context, l Line) (Document, error) {
	if l.SKU == "" {
		return Document{}, fmt.Errorf("sales order for %q: empty sku", l.Item)
	}
	doc, err := e.create(ctx, "SO")
	if err != nil {
		return Document{}, err
	}
	ev := e.log.Info().
		Str("so", doc.Number).
		Str("customer", l.Customer).
		Str("sku", l.SKU).
		Int("qty", l.Quantity)
	if l.Price != nil {
		ev = ev.Str("price", l.Price.String())
	}
	ev.Msg("sales order created")
	return doc, nil
}

func (e *ERPSimulator) CreateDeliveryNote(ctx context.Context, salesOrder string) (Document, error) {
	doc, err := e.create(ctx, "DN")
	if err != nil {
		return Document{}, err
	}
	e.log.Info().Str("so", salesOrder).Str("dn", doc.Number).Msg("delivery note created")
	return doc, nil
}

func (e *ERPSimulator) CreateInvoice(ctx context.Context, deliveryNote string) (Document, error) {
	doc, err := e.create(ctx, "INV")
	if err != nil {
		return Document{}, err
	}
	e.log.Info().Str("dn", deliveryNote).Str("inv", doc.Number).Msg("invoice created")
	return doc, nil
}

func (e *ERPSimulator) create(ctx context.Context, prefix string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, fmt.Errorf("create %s: %w", prefix, err)
	}
	ts := e.now()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return Document{
		Number:    fmt.Sprintf("%s-%s-%s", prefix, ts.Format("20060102150405"), suffix),
		Status:    "created",
		CreatedAt: ts,
	}, nil
}
