package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePO = `PURCHASE ORDER
PO Number: PO-4512
Order Date: 2026-10-01
Customer: ABC Manufacturing
Item Description: Red Widget
Quantity: 50
Unit Price: $1,250.00
`

func TestParse_FullDocument(t *testing.T) {
	o := Parse(samplePO)

	assert.Equal(t, "ABC Manufacturing", o.Customer)
	assert.Equal(t, "Red Widget", o.Item)
	assert.Equal(t, 50, o.Quantity)
	assert.Equal(t, "PO-4512", o.PONumber)
	assert.Equal(t, "2026-10-01", o.OrderDate)
	require.NotNil(t, o.Price)
	assert.Equal(t, "1250", o.Price.String())
}

func TestParse_Defaults(t *testing.T) {
	o := Parse("hello, nothing useful here")

	assert.Equal(t, UnknownCustomer, o.Customer)
	assert.Equal(t, UnknownItem, o.Item)
	assert.Equal(t, 1, o.Quantity)
	assert.Nil(t, o.Price)
	assert.Empty(t, o.PONumber)
}

func TestParse_AlternativeLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ParsedOrder
	}{
		{
			name: "bill to and product",
			text: "Bill To: XYZ Industries\nProduct: Blue Component\n12 pcs\n",
			want: ParsedOrder{Customer: "XYZ Industries", Item: "Blue Component", Quantity: 12},
		},
		{
			name: "from line and units",
			text: "From: DEF Ltd\nDescription: Green Part\nUnits: 7\n",
			want: ParsedOrder{Customer: "DEF Ltd", Item: "Green Part", Quantity: 7},
		},
		{
			name: "purchase order and slash date",
			text: "Purchase Order #778\nClient: Acme\nItem: Steel Rod\nshipped 10/02/2026\n",
			want: ParsedOrder{Customer: "Acme", Item: "Steel Rod", Quantity: 1, PONumber: "778", OrderDate: "10/02/2026"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			got.Price = nil
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_DollarAmountWithoutLabel(t *testing.T) {
	o := Parse("Item: Copper Wire\ncost $99.90 each")
	require.NotNil(t, o.Price)
	assert.Equal(t, "99.9", o.Price.String())
}
