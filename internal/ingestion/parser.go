package ingestion

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/model"
)

// ParseDirective converts a wire JSON payload into a model directive.
// Numbers travel as strings so no precision is lost in transit.
func ParseDirective(data []byte) (model.Directive, error) {
	var j directiveJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return model.Directive{}, fmt.Errorf("parse directive: %w", err)
	}

	date, err := model.ParseDate(j.Date)
	if err != nil {
		return model.Directive{}, fmt.Errorf("parse date: %w", err)
	}
	meta, err := parseMeta(j.Meta)
	if err != nil {
		return model.Directive{}, err
	}

	body, err := parseBody(&j)
	if err != nil {
		return model.Directive{}, err
	}
	return model.NewDirective(date, meta, body), nil
}

func parseBody(j *directiveJSON) (model.Body, error) {
	switch j.Kind {
	case "transaction":
		if j.Transaction == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return parseTransaction(j.Transaction)
	case "open":
		if j.Open == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Open{
			Account:    j.Open.Account,
			Currencies: j.Open.Currencies,
			Booking:    model.ParseBooking(j.Open.Booking),
		}, nil
	case "close":
		if j.Close == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Close{Account: j.Close.Account}, nil
	case "commodity":
		if j.Commodity == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Commodity{Currency: j.Commodity.Currency}, nil
	case "pad":
		if j.Pad == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Pad{Account: j.Pad.Account, SourceAccount: j.Pad.SourceAccount}, nil
	case "balance":
		if j.Balance == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return parseBalance(j.Balance)
	case "note":
		if j.Note == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Note{Account: j.Note.Account, Comment: j.Note.Comment}, nil
	case "event":
		if j.Event == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Event{Type: j.Event.Type, Description: j.Event.Description}, nil
	case "query":
		if j.Query == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Query{Name: j.Query.Name, QueryString: j.Query.QueryString}, nil
	case "price":
		if j.Price == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		amount, err := parseAmount(&j.Price.Amount)
		if err != nil {
			return nil, err
		}
		return &model.Price{Currency: j.Price.Currency, Amount: amount}, nil
	case "document":
		if j.Document == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return &model.Document{
			Account:  j.Document.Account,
			Filename: j.Document.Filename,
			Tags:     j.Document.Tags,
			Links:    j.Document.Links,
		}, nil
	case "custom":
		if j.Custom == nil {
			return nil, fmt.Errorf("directive kind %q missing body", j.Kind)
		}
		return parseCustom(j.Custom)
	default:
		return nil, fmt.Errorf("unknown directive kind: %s", j.Kind)
	}
}

// --- JSON wire formats ---
// Field names use snake_case to match upstream producers. Decimal numbers
// travel as strings.

type directiveJSON struct {
	Date string   `json:"date"`
	Kind string   `json:"kind"`
	Meta []kvJSON `json:"meta,omitempty"`

	Transaction *transactionJSON `json:"transaction,omitempty"`
	Open        *openJSON        `json:"open,omitempty"`
	Close       *closeJSON       `json:"close,omitempty"`
	Commodity   *commodityJSON   `json:"commodity,omitempty"`
	Pad         *padJSON         `json:"pad,omitempty"`
	Balance     *balanceJSON     `json:"balance,omitempty"`
	Note        *noteJSON        `json:"note,omitempty"`
	Event       *eventJSON       `json:"event,omitempty"`
	Query       *queryJSON       `json:"query,omitempty"`
	Price       *priceJSON       `json:"price,omitempty"`
	Document    *documentJSON    `json:"document,omitempty"`
	Custom      *customJSON      `json:"custom,omitempty"`
}

type kvJSON struct {
	Key   string          `json:"key"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type amountJSON struct {
	Number   string `json:"number"`
	Currency string `json:"currency"`
}

type costJSON struct {
	Number   string `json:"number"`
	Currency string `json:"currency"`
	Date     string `json:"date"`
	Label    string `json:"label,omitempty"`
}

type costSpecJSON struct {
	Number   *string `json:"number,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Date     *string `json:"date,omitempty"`
	Label    string  `json:"label,omitempty"`
}

type postingJSON struct {
	Meta     []kvJSON      `json:"meta,omitempty"`
	Date     *string       `json:"date,omitempty"`
	Flag     string        `json:"flag,omitempty"`
	Account  string        `json:"account"`
	Units    *amountJSON   `json:"units,omitempty"`
	Cost     *costJSON     `json:"cost,omitempty"`
	CostSpec *costSpecJSON `json:"cost_spec,omitempty"`
	Price    *amountJSON   `json:"price,omitempty"`
}

type transactionJSON struct {
	Flag      string        `json:"flag,omitempty"`
	Payee     string        `json:"payee,omitempty"`
	Narration string        `json:"narration,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
	Links     []string      `json:"links,omitempty"`
	Postings  []postingJSON `json:"postings"`
}

type openJSON struct {
	Account    string   `json:"account"`
	Currencies []string `json:"currencies,omitempty"`
	Booking    string   `json:"booking,omitempty"`
}

type closeJSON struct {
	Account string `json:"account"`
}

type commodityJSON struct {
	Currency string `json:"currency"`
}

type padJSON struct {
	Account       string `json:"account"`
	SourceAccount string `json:"source_account"`
}

type balanceJSON struct {
	Account    string      `json:"account"`
	Amount     amountJSON  `json:"amount"`
	Tolerance  *string     `json:"tolerance,omitempty"`
	DiffAmount *amountJSON `json:"diff_amount,omitempty"`
}

type noteJSON struct {
	Account string `json:"account"`
	Comment string `json:"comment"`
}

type eventJSON struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type queryJSON struct {
	Name        string `json:"name"`
	QueryString string `json:"query_string"`
}

type priceJSON struct {
	Currency string     `json:"currency"`
	Amount   amountJSON `json:"amount"`
}

type documentJSON struct {
	Account  string   `json:"account"`
	Filename string   `json:"filename"`
	Tags     []string `json:"tags,omitempty"`
	Links    []string `json:"links,omitempty"`
}

type customJSON struct {
	Name   string   `json:"name"`
	Values []kvJSON `json:"values,omitempty"`
}

// --- parse helpers ---

func parseAmount(j *amountJSON) (model.Amount, error) {
	n, err := decimal.NewFromString(j.Number)
	if err != nil {
		return model.Amount{}, fmt.Errorf("parse amount number %q: %w", j.Number, err)
	}
	return model.NewAmount(n, j.Currency), nil
}

func parseCost(j *costJSON) (model.Cost, error) {
	n, err := decimal.NewFromString(j.Number)
	if err != nil {
		return model.Cost{}, fmt.Errorf("parse cost number %q: %w", j.Number, err)
	}
	date, err := model.ParseDate(j.Date)
	if err != nil {
		return model.Cost{}, fmt.Errorf("parse cost date: %w", err)
	}
	return model.Cost{Number: n, Currency: j.Currency, Date: date, Label: j.Label}, nil
}

func parseCostSpec(j *costSpecJSON) (*model.CostSpec, error) {
	spec := &model.CostSpec{Currency: j.Currency, Label: j.Label}
	if j.Number != nil {
		n, err := decimal.NewFromString(*j.Number)
		if err != nil {
			return nil, fmt.Errorf("parse cost spec number %q: %w", *j.Number, err)
		}
		spec.Number = &n
	}
	if j.Date != nil {
		d, err := model.ParseDate(*j.Date)
		if err != nil {
			return nil, fmt.Errorf("parse cost spec date: %w", err)
		}
		spec.Date = &d
	}
	return spec, nil
}

func parseTransaction(j *transactionJSON) (*model.Transaction, error) {
	txn := &model.Transaction{
		Flag:      j.Flag,
		Payee:     j.Payee,
		Narration: j.Narration,
		Tags:      j.Tags,
		Links:     j.Links,
		Postings:  make([]model.Posting, 0, len(j.Postings)),
	}
	for i := range j.Postings {
		p, err := parsePosting(&j.Postings[i])
		if err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		txn.Postings = append(txn.Postings, p)
	}
	return txn, nil
}

func parsePosting(j *postingJSON) (model.Posting, error) {
	p := model.Posting{Flag: j.Flag, Account: j.Account}

	meta, err := parseMeta(j.Meta)
	if err != nil {
		return model.Posting{}, err
	}
	p.Meta = meta

	if j.Date != nil {
		d, err := model.ParseDate(*j.Date)
		if err != nil {
			return model.Posting{}, fmt.Errorf("parse posting date: %w", err)
		}
		p.Date = &d
	}
	if j.Units != nil {
		units, err := parseAmount(j.Units)
		if err != nil {
			return model.Posting{}, err
		}
		p.Units = units
	}
	if j.Cost != nil {
		cost, err := parseCost(j.Cost)
		if err != nil {
			return model.Posting{}, err
		}
		p.Cost = &cost
	}
	if j.CostSpec != nil {
		spec, err := parseCostSpec(j.CostSpec)
		if err != nil {
			return model.Posting{}, err
		}
		p.CostSpec = spec
	}
	if j.Price != nil {
		price, err := parseAmount(j.Price)
		if err != nil {
			return model.Posting{}, err
		}
		p.Price = &price
	}
	return p, nil
}

func parseBalance(j *balanceJSON) (*model.Balance, error) {
	amount, err := parseAmount(&j.Amount)
	if err != nil {
		return nil, err
	}
	b := &model.Balance{Account: j.Account, Amount: amount}
	if j.Tolerance != nil {
		tol, err := decimal.NewFromString(*j.Tolerance)
		if err != nil {
			return nil, fmt.Errorf("parse tolerance %q: %w", *j.Tolerance, err)
		}
		b.Tolerance = &tol
	}
	if j.DiffAmount != nil {
		diff, err := parseAmount(j.DiffAmount)
		if err != nil {
			return nil, err
		}
		b.DiffAmount = &diff
	}
	return b, nil
}

func parseCustom(j *customJSON) (*model.Custom, error) {
	c := &model.Custom{Name: j.Name}
	for i := range j.Values {
		v, err := parseMetaValue(&j.Values[i])
		if err != nil {
			return nil, fmt.Errorf("custom value %d: %w", i, err)
		}
		c.Values = append(c.Values, v)
	}
	return c, nil
}

func parseMeta(entries []kvJSON) (model.Meta, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	meta := make(model.Meta, 0, len(entries))
	for i := range entries {
		v, err := parseMetaValue(&entries[i])
		if err != nil {
			return nil, fmt.Errorf("meta %q: %w", entries[i].Key, err)
		}
		meta.Add(entries[i].Key, v)
	}
	return meta, nil
}

func parseMetaValue(j *kvJSON) (model.MetaValue, error) {
	switch j.Type {
	case "text", "account", "currency", "tag", "link", "flag":
		var s string
		if err := json.Unmarshal(j.Value, &s); err != nil {
			return model.MetaValue{}, fmt.Errorf("parse %s value: %w", j.Type, err)
		}
		switch j.Type {
		case "text":
			return model.TextValue(s), nil
		case "account":
			return model.AccountValue(s), nil
		case "currency":
			return model.CurrencyValue(s), nil
		case "tag":
			return model.TagValue(s), nil
		case "link":
			return model.LinkValue(s), nil
		default:
			return model.FlagValue(s), nil
		}
	case "date":
		var s string
		if err := json.Unmarshal(j.Value, &s); err != nil {
			return model.MetaValue{}, fmt.Errorf("parse date value: %w", err)
		}
		d, err := model.ParseDate(s)
		if err != nil {
			return model.MetaValue{}, fmt.Errorf("parse date value: %w", err)
		}
		return model.DateValue(d), nil
	case "boolean":
		var b bool
		if err := json.Unmarshal(j.Value, &b); err != nil {
			return model.MetaValue{}, fmt.Errorf("parse boolean value: %w", err)
		}
		return model.BoolValue(b), nil
	case "integer":
		var i int64
		if err := json.Unmarshal(j.Value, &i); err != nil {
			return model.MetaValue{}, fmt.Errorf("parse integer value: %w", err)
		}
		return model.IntValue(i), nil
	case "number":
		var s string
		if err := json.Unmarshal(j.Value, &s); err != nil {
			return model.MetaValue{}, fmt.Errorf("parse number value: %w", err)
		}
		n, err := decimal.NewFromString(s)
		if err != nil {
			return model.MetaValue{}, fmt.Errorf("parse number value %q: %w", s, err)
		}
		return model.NumberValue(n), nil
	case "amount":
		var a amountJSON
		if err := json.Unmarshal(j.Value, &a); err != nil {
			return model.MetaValue{}, fmt.Errorf("parse amount value: %w", err)
		}
		amount, err := parseAmount(&a)
		if err != nil {
			return model.MetaValue{}, err
		}
		return model.AmountValue(amount), nil
	default:
		return model.MetaValue{}, fmt.Errorf("unknown metadata type: %s", j.Type)
	}
}
