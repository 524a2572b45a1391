package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"sku-mapper/internal/skumap/model"
)

var (
	ErrEmptyDocument = errors.New("no text in order document")
	// ErrSKUNotFound — заказ уходит в исключения, артикул по умолчанию не подставляем.
	ErrSKUNotFound = errors.New("sku mapping not found")
)

// SKUResolver — то, что умеет сопоставлять позицию с артикулом (service.Store, service.Resolver).
type SKUResolver interface {
	Resolve(req model.Request) model.Result
}

type Outcome struct {
	Order        ParsedOrder  `json:"order"`
	Match        model.Result `json:"match"`
	SalesOrder   Document     `json:"salesOrder"`
	DeliveryNote Document     `json:"deliveryNote"`
	Invoice      Document     `json:"invoice"`
}

type Processor struct {
	resolver SKUResolver
	erp      *ERPSimulator
	log      zerolog.Logger
}

func NewProcessor(resolver SKUResolver, erp *ERPSimulator, logger zerolog.Logger) *Processor {
	return &Processor{resolver: resolver, erp: erp, log: logger}
}

// Process: текст → поля заказа → артикул → SO, DN, INV.
// При ErrSKUNotFound в Outcome остаются распарсенный заказ и результат сопоставления.
func (p *Processor) Process(ctx context.Context, text string) (Outcome, error) {
	if strings.TrimSpace(text) == "" {
		return Outcome{}, ErrEmptyDocument
	}

	out := Outcome{Order: Parse(text)}
	log := p.log.With().Str("customer", out.Order.Customer).Str("item", out.Order.Item).Logger()

	out.Match = p.resolver.Resolve(model.Request{Description: out.Order.Item, Customer: out.Order.Customer})
	if !out.Match.Found {
		log.Warn().Msg("order routed to exceptions")
		return out, fmt.Errorf("%w: %s", ErrSKUNotFound, out.Order.Item)
	}

	var err error
	out.SalesOrder, err = p.erp.CreateSalesOrder(ctx, Line{
		Customer: out.Order.Customer,
		Item:     out.Order.Item,
		SKU:      out.Match.Code,
		Quantity: out.Order.Quantity,
		Price:    out.Order.Price,
	})
	if err != nil {
		return out, err
	}
	if out.DeliveryNote, err = p.erp.CreateDeliveryNote(ctx, out.SalesOrder.Number); err != nil {
		return out, err
	}
	if out.Invoice, err = p.erp.CreateInvoice(ctx, out.DeliveryNote.Number); err != nil {
		return out, err
	}

	log.Info().Str("sku", out.Match.Code).Str("inv", out.Invoice.Number).Msg("order processed")
	return out, nil
}
