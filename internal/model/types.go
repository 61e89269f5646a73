package model

// -----------------------------------------------------------------------------
// Currency overview (GET /currencyoverview)
// -----------------------------------------------------------------------------

// CurrencyOverview is the currency overview payload for one league and type.
type CurrencyOverview struct {
	Lines           []CurrencyLine   `json:"lines"`
	CurrencyDetails []CurrencyDetail `json:"currencyDetails"`
}

// DetailByName returns the currency detail entry whose name matches exactly.
func (o *CurrencyOverview) DetailByName(name string) (CurrencyDetail, bool) {
	for _, d := range o.CurrencyDetails {
		if d.Name == name {
			return d, true
		}
	}
	return CurrencyDetail{}, false
}

// CurrencyLine is the price snapshot of one currency kind (e.g. "Chaos Orb").
type CurrencyLine struct {
	Name             string         `json:"currencyTypeName"`
	Pay              *ExchangeQuote `json:"pay"`
	Receive          *ExchangeQuote `json:"receive"`
	PaySparkLine     SparkLine      `json:"paySparkLine"`
	ReceiveSparkLine SparkLine      `json:"receiveSparkLine"`
	ChaosEquivalent  *float64       `json:"chaosEquivalent"` // nil until the service has a reliable quote

	LowConfidencePaySparkLine     SparkLine `json:"lowConfidencePaySparkLine"`
	LowConfidenceReceiveSparkLine SparkLine `json:"lowConfidenceReceiveSparkLine"`

	DetailsID string `json:"detailsId"`
}

// ExchangeQuote is one side (pay or receive) of a currency exchange sample.
type ExchangeQuote struct {
	ID            int     `json:"id"`
	LeagueID      int     `json:"league_id"`
	PayCurrencyID int     `json:"pay_currency_id"`
	GetCurrencyID int     `json:"get_currency_id"`
	SampleTimeUTC string  `json:"sample_time_utc"` // ISO 8601
	Count         int     `json:"count"`
	Value         float64 `json:"value"` // exchange rate

	DataPointCount    *int  `json:"data_point_count"`
	IncludesSecondary *bool `json:"includes_secondary"`
	ListingCount      *int  `json:"listing_count"`
}

// CurrencyDetail carries icon and trade metadata for a currency.
type CurrencyDetail struct {
	ID      int     `json:"id"`
	Icon    *string `json:"icon"`
	Name    string  `json:"name"`
	TradeID *string `json:"tradeId"`
}

// -----------------------------------------------------------------------------
// Item overview (GET /itemoverview)
// -----------------------------------------------------------------------------

// ItemOverview is the item overview payload for one league and item type.
type ItemOverview struct {
	Lines []ItemLine `json:"lines"`
}

// ItemLine is the price snapshot of one unique item, card, gem, map, etc.
type ItemLine struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Icon          string  `json:"icon"`
	MapTier       *int    `json:"mapTier"`
	LevelRequired *int    `json:"levelRequired"`
	BaseType      *string `json:"baseType"`
	StackSize     *int    `json:"stackSize"`
	Variant       *string `json:"variant"`
	ItemClass     *int    `json:"itemClass"`

	Sparkline              SparkLine `json:"sparkline"`
	LowConfidenceSparkline SparkLine `json:"lowConfidenceSparkline"`

	ImplicitModifiers []Modifier `json:"implicitModifiers"`
	ExplicitModifiers []Modifier `json:"explicitModifiers"`
	FlavourText       string     `json:"flavourText"`

	Corrupted  *bool   `json:"corrupted"`
	GemLevel   *int    `json:"gemLevel"`
	GemQuality *int    `json:"gemQuality"`
	ItemType   *string `json:"itemType"`

	// Valuation. ChaosValue is always reported and never negative.
	ChaosValue   float64  `json:"chaosValue"`
	ExaltedValue *float64 `json:"exaltedValue"`
	DivineValue  *float64 `json:"divineValue"`

	Count        int    `json:"count"` // listings sampled
	DetailsID    string `json:"detailsId"`
	ListingCount *int   `json:"listingCount"`
	Links        *int   `json:"links"`

	// TradeInfo is nil when absent and empty when the service sent [].
	TradeInfo []TradeInfo `json:"tradeInfo"`
}

// -----------------------------------------------------------------------------
// Shared types
// -----------------------------------------------------------------------------

// SparkLine is a short price history. Data is nil when no history was sent;
// individual nil entries are missing sample points.
type SparkLine struct {
	Data        []*float64 `json:"data"`
	TotalChange *float64   `json:"totalChange"` // percent, nil with insufficient history
}

// Modifier is an implicit or explicit item modifier line.
type Modifier struct {
	Text     string `json:"text"`
	Optional bool   `json:"optional"`
}

// TradeInfo is a trade-site modifier range for an item.
type TradeInfo struct {
	Mod string `json:"mod"`
	Min int    `json:"min"`
	Max int    `json:"max"`
}
