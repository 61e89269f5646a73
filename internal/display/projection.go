package display

import "github.com/rickgao/poe-ninja-cli/internal/model"

// NotAvailable is shown for an absent base type.
const NotAvailable = "N/A"

// CurrencyRow is one rendered line of a currency table.
type CurrencyRow struct {
	Name            string  `json:"name"`
	ChaosEquivalent float64 `json:"chaosEquivalent"`
	PayValue        float64 `json:"payValue"`
	ReceiveValue    float64 `json:"receiveValue"`
	PayCount        int     `json:"payCount"`
	ReceiveCount    int     `json:"receiveCount"`

	// Set by AttachDetails; not shown in tables.
	Icon    string `json:"icon,omitempty"`
	TradeID string `json:"tradeId,omitempty"`
}

// ItemRow is one rendered line of an item table.
type ItemRow struct {
	Name          string  `json:"name"`
	BaseType      string  `json:"baseType"`
	ChaosValue    float64 `json:"chaosValue"`
	DivineValue   float64 `json:"divineValue"`
	Count         int     `json:"count"`
	ListingCount  int     `json:"listingCount"`
	LevelRequired int     `json:"levelRequired"`
}

// CurrencyRowFrom projects a currency line, zeroing absent values.
func CurrencyRowFrom(line model.CurrencyLine) CurrencyRow {
	row := CurrencyRow{
		Name:            line.Name,
		ChaosEquivalent: valueOr(line.ChaosEquivalent, 0),
	}
	if line.Pay != nil {
		row.PayValue = line.Pay.Value
		row.PayCount = line.Pay.Count
	}
	if line.Receive != nil {
		row.ReceiveValue = line.Receive.Value
		row.ReceiveCount = line.Receive.Count
	}
	return row
}

// ItemRowFrom projects an item line. An absent base type becomes "N/A",
// other absent values become zero.
func ItemRowFrom(line model.ItemLine) ItemRow {
	return ItemRow{
		Name:          line.Name,
		BaseType:      valueOr(line.BaseType, NotAvailable),
		ChaosValue:    line.ChaosValue,
		DivineValue:   valueOr(line.DivineValue, 0),
		Count:         line.Count,
		ListingCount:  valueOr(line.ListingCount, 0),
		LevelRequired: valueOr(line.LevelRequired, 0),
	}
}

// CurrencyRows projects lines in order.
func CurrencyRows(lines []model.CurrencyLine) []CurrencyRow {
	rows := make([]CurrencyRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, CurrencyRowFrom(l))
	}
	return rows
}

// AttachDetails copies icon and trade id from the overview's currency
// details onto rows with a matching name.
func AttachDetails(rows []CurrencyRow, overview *model.CurrencyOverview) {
	if overview == nil {
		return
	}
	for i := range rows {
		d, ok := overview.DetailByName(rows[i].Name)
		if !ok {
			continue
		}
		rows[i].Icon = valueOr(d.Icon, "")
		rows[i].TradeID = valueOr(d.TradeID, "")
	}
}

// ItemRows projects lines in order.
func ItemRows(lines []model.ItemLine) []ItemRow {
	rows := make([]ItemRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, ItemRowFrom(l))
	}
	return rows
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
