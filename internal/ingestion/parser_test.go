package ingestion_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/ingestion"
	"BeanLedger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ============================================================================
// Test: parsing directives
// ============================================================================

func TestParseDirective_Transaction(t *testing.T) {
	payload := `{
		"date": "2020-03-01",
		"kind": "transaction",
		"meta": [{"key": "source", "type": "text", "value": "importer"}],
		"transaction": {
			"flag": "*",
			"payee": "Broker",
			"narration": "Sell HOOL",
			"tags": ["trade"],
			"postings": [
				{
					"account": "Assets:Stock",
					"units": {"number": "-12", "currency": "HOOL"},
					"cost_spec": {"currency": "USD"},
					"price": {"number": "120", "currency": "USD"}
				},
				{
					"account": "Assets:Cash",
					"units": {"number": "1440", "currency": "USD"}
				},
				{
					"account": "Income:PnL"
				}
			]
		}
	}`

	d, err := ingestion.ParseDirective([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Date != model.NewDate(2020, 3, 1) {
		t.Errorf("date = %s, want 2020-03-01", d.Date)
	}

	source, ok := d.Meta.Get("source")
	if !ok {
		t.Fatal("meta key source missing")
	}
	if text, err := source.Text(); err != nil || text != "importer" {
		t.Errorf("meta source = %q (%v), want importer", text, err)
	}

	txn, ok := d.Body.(*model.Transaction)
	if !ok {
		t.Fatalf("body is %s, want transaction", d.Body.Kind())
	}
	if txn.Payee != "Broker" || len(txn.Postings) != 3 {
		t.Fatalf("transaction = %+v, want Broker with 3 postings", txn)
	}

	stock := txn.Postings[0]
	if !stock.Units.Number.Equal(dec("-12")) || stock.Units.Currency != "HOOL" {
		t.Errorf("units = %s, want -12 HOOL", stock.Units)
	}
	if stock.CostSpec == nil || stock.CostSpec.Currency != "USD" || stock.CostSpec.Number != nil {
		t.Errorf("cost spec = %+v, want currency-only USD", stock.CostSpec)
	}
	if stock.Price == nil || !stock.Price.Number.Equal(dec("120")) {
		t.Errorf("price = %v, want 120 USD", stock.Price)
	}

	if !txn.Postings[2].Units.IsEmpty() {
		t.Errorf("third posting units = %s, want elided", txn.Postings[2].Units)
	}
}

func TestParseDirective_OpenWithBooking(t *testing.T) {
	payload := `{
		"date": "2020-01-01",
		"kind": "open",
		"open": {"account": "Assets:Stock", "currencies": ["HOOL"], "booking": "FIFO"}
	}`

	d, err := ingestion.ParseDirective([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	open := d.Body.(*model.Open)
	if open.Booking != model.BookingFIFO {
		t.Errorf("booking = %s, want FIFO", open.Booking)
	}
	if len(open.Currencies) != 1 || open.Currencies[0] != "HOOL" {
		t.Errorf("currencies = %v, want [HOOL]", open.Currencies)
	}
}

func TestParseDirective_BalanceWithTolerance(t *testing.T) {
	payload := `{
		"date": "2020-06-01",
		"kind": "balance",
		"balance": {
			"account": "Assets:Checking",
			"amount": {"number": "1204.20", "currency": "USD"},
			"tolerance": "0.05"
		}
	}`

	d, err := ingestion.ParseDirective([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b := d.Body.(*model.Balance)
	if !b.Amount.Number.Equal(dec("1204.20")) {
		t.Errorf("amount = %s, want 1204.20", b.Amount.Number)
	}
	if b.Tolerance == nil || !b.Tolerance.Equal(dec("0.05")) {
		t.Errorf("tolerance = %v, want 0.05", b.Tolerance)
	}
}

func TestParseDirective_MetaVariants(t *testing.T) {
	payload := `{
		"date": "2020-01-01",
		"kind": "note",
		"meta": [
			{"key": "when", "type": "date", "value": "2019-12-31"},
			{"key": "reviewed", "type": "boolean", "value": true},
			{"key": "attempt", "type": "integer", "value": 3},
			{"key": "rate", "type": "number", "value": "0.0125"},
			{"key": "fee", "type": "amount", "value": {"number": "9.95", "currency": "USD"}}
		],
		"note": {"account": "Assets:Checking", "comment": "statement check"}
	}`

	d, err := ingestion.ParseDirective([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	when, _ := d.Meta.Get("when")
	if got, err := when.Date(); err != nil || got != model.NewDate(2019, 12, 31) {
		t.Errorf("when = %v (%v), want 2019-12-31", got, err)
	}
	reviewed, _ := d.Meta.Get("reviewed")
	if got, err := reviewed.Bool(); err != nil || !got {
		t.Errorf("reviewed = %v (%v), want true", got, err)
	}
	attempt, _ := d.Meta.Get("attempt")
	if got, err := attempt.Int(); err != nil || got != 3 {
		t.Errorf("attempt = %d (%v), want 3", got, err)
	}
	rate, _ := d.Meta.Get("rate")
	if got, err := rate.Number(); err != nil || !got.Equal(dec("0.0125")) {
		t.Errorf("rate = %s (%v), want 0.0125", got, err)
	}
	fee, _ := d.Meta.Get("fee")
	if got, err := fee.Amount(); err != nil || !got.Number.Equal(dec("9.95")) || got.Currency != "USD" {
		t.Errorf("fee = %s (%v), want 9.95 USD", got, err)
	}
}

func TestParseDirective_Errors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "unknown kind",
			payload: `{"date": "2020-01-01", "kind": "journal"}`,
			wantErr: "unknown directive kind",
		},
		{
			name:    "missing body",
			payload: `{"date": "2020-01-01", "kind": "open"}`,
			wantErr: "missing body",
		},
		{
			name:    "bad date",
			payload: `{"date": "01/02/2020", "kind": "close", "close": {"account": "Assets:A"}}`,
			wantErr: "parse date",
		},
		{
			name: "bad number",
			payload: `{"date": "2020-01-01", "kind": "price",
				"price": {"currency": "HOOL", "amount": {"number": "12,5", "currency": "USD"}}}`,
			wantErr: "parse amount number",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingestion.ParseDirective([]byte(tc.payload))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

// ============================================================================
// Test: encoding booked output
// ============================================================================

func TestEncodeDirective_BookedTransactionRoundTrips(t *testing.T) {
	cost := model.Cost{
		Number:   dec("100"),
		Currency: "USD",
		Date:     model.NewDate(2020, 1, 1),
		Label:    "opening",
	}
	in := model.NewDirective(model.NewDate(2020, 3, 1), nil, &model.Transaction{
		Flag: "*",
		Postings: []model.Posting{
			{
				Account: "Assets:Stock",
				Units:   model.NewAmount(dec("-10"), "HOOL"),
				Cost:    &cost,
			},
			{
				Account: "Assets:Cash",
				Units:   model.NewAmount(dec("1000"), "USD"),
			},
		},
	})

	data, err := ingestion.EncodeDirective(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := ingestion.ParseDirective(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	txn := out.Body.(*model.Transaction)
	got := txn.Postings[0]
	if got.Cost == nil {
		t.Fatal("cost lost in round trip")
	}
	if !got.Cost.Number.Equal(dec("100")) || got.Cost.Label != "opening" ||
		got.Cost.Date != model.NewDate(2020, 1, 1) {
		t.Errorf("cost = %s, want 100 USD 2020-01-01 opening", got.Cost)
	}
	if !got.Units.Number.Equal(dec("-10")) {
		t.Errorf("units = %s, want -10 HOOL", got.Units)
	}
}

func TestEncodeDirective_FailedAssertionCarriesDiff(t *testing.T) {
	diff := model.NewAmount(dec("-0.01"), "USD")
	in := model.NewDirective(model.NewDate(2020, 1, 3), nil, &model.Balance{
		Account:    "Assets:Checking",
		Amount:     model.NewAmount(dec("100.01"), "USD"),
		DiffAmount: &diff,
	})

	data, err := ingestion.EncodeDirective(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := ingestion.ParseDirective(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	b := out.Body.(*model.Balance)
	if b.DiffAmount == nil || !b.DiffAmount.Number.Equal(dec("-0.01")) {
		t.Errorf("diff = %v, want -0.01 USD", b.DiffAmount)
	}
}
