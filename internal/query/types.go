package query

// LotView is one open cost lot for API queries. Numbers are decimal strings;
// cost fields are empty for cost-less (plain cash) lots.
type LotView struct {
	Currency     string `json:"currency"`
	Units        string `json:"units"`
	CostNumber   string `json:"cost_number,omitempty"`
	CostCurrency string `json:"cost_currency,omitempty"`
	CostDate     string `json:"cost_date,omitempty"`
	CostLabel    string `json:"cost_label,omitempty"`
}

// LotsResponse lists an account's open lots.
type LotsResponse struct {
	Account string    `json:"account"`
	Lots    []LotView `json:"lots"`
}

// PositionView is an account's net quantity in one currency, summed across
// all of its lots.
type PositionView struct {
	Currency string `json:"currency"`
	Units    string `json:"units"`
}

// BalancesResponse lists an account's net position per currency.
type BalancesResponse struct {
	Account   string         `json:"account"`
	Positions []PositionView `json:"positions"`
}

// PriceResponse is the most recent price observation at or before a date.
type PriceResponse struct {
	Currency      string `json:"currency"`
	Date          string `json:"date"` // observation date, not the query date
	Number        string `json:"number"`
	QuoteCurrency string `json:"quote_currency"`
}

// DirectiveRecord is one booked directive read back from storage.
type DirectiveRecord struct {
	RunID     string `json:"run_id"`
	Sequence  int64  `json:"sequence"`
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	Payload   []byte `json:"payload"` // wire JSON of the directive
	BookError string `json:"book_error,omitempty"`
}

// DirectivesResponse is a page of booked directives. NextSequence is the
// cursor for the following page, zero when the page was not full.
type DirectivesResponse struct {
	RunID        string            `json:"run_id"`
	Directives   []DirectiveRecord `json:"directives"`
	NextSequence int64             `json:"next_sequence,omitempty"`
}
