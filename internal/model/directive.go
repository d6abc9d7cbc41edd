package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Booking is the per-account lot disambiguation policy, set by the most
// recent Open directive for the account. Accounts opened without an explicit
// method operate under STRICT.
type Booking int32

const (
	BookingUnknown Booking = iota
	BookingStrict
	BookingNone
	BookingAverage
	BookingFIFO
	BookingLIFO
)

func (b Booking) String() string {
	switch b {
	case BookingStrict:
		return "STRICT"
	case BookingNone:
		return "NONE"
	case BookingAverage:
		return "AVERAGE"
	case BookingFIFO:
		return "FIFO"
	case BookingLIFO:
		return "LIFO"
	default:
		return "UNKNOWN"
	}
}

func ParseBooking(s string) Booking {
	switch s {
	case "STRICT":
		return BookingStrict
	case "NONE":
		return BookingNone
	case "AVERAGE":
		return BookingAverage
	case "FIFO":
		return BookingFIFO
	case "LIFO":
		return BookingLIFO
	default:
		return BookingUnknown
	}
}

// Posting is one leg of a transaction. A posting belongs to exactly one
// Transaction; it is never shared.
//
// On input, Units may be empty (elided) and CostSpec may carry a partial
// cost. On a committed posting Units is fully resolved, CostSpec is nil and
// Cost, if a lot was involved, is fully resolved.
type Posting struct {
	Meta     Meta
	Date     *Date
	Flag     string
	Account  string
	Units    Amount
	Cost     *Cost
	CostSpec *CostSpec
	Price    *Amount
}

func (p Posting) clone() Posting {
	out := p
	out.Meta = append(Meta(nil), p.Meta...)
	if p.Date != nil {
		d := *p.Date
		out.Date = &d
	}
	if p.Cost != nil {
		c := *p.Cost
		out.Cost = &c
	}
	if p.CostSpec != nil {
		cs := *p.CostSpec
		if p.CostSpec.Number != nil {
			n := *p.CostSpec.Number
			cs.Number = &n
		}
		if p.CostSpec.Date != nil {
			d := *p.CostSpec.Date
			cs.Date = &d
		}
		out.CostSpec = &cs
	}
	if p.Price != nil {
		pr := *p.Price
		out.Price = &pr
	}
	return out
}

// Transaction is the only directive kind with booking behavior.
type Transaction struct {
	Flag      string
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Postings  []Posting
}

// Accounts returns the sorted set of accounts the transaction touches.
func (t *Transaction) Accounts() []string {
	seen := make(map[string]bool, len(t.Postings))
	var out []string
	for _, p := range t.Postings {
		if !seen[p.Account] {
			seen[p.Account] = true
			out = append(out, p.Account)
		}
	}
	sort.Strings(out)
	return out
}

// Clone deep-copies the transaction so booking can resolve postings without
// mutating the caller's directive.
func (t *Transaction) Clone() *Transaction {
	out := &Transaction{
		Flag:      t.Flag,
		Payee:     t.Payee,
		Narration: t.Narration,
		Tags:      append([]string(nil), t.Tags...),
		Links:     append([]string(nil), t.Links...),
		Postings:  make([]Posting, len(t.Postings)),
	}
	for i, p := range t.Postings {
		out.Postings[i] = p.clone()
	}
	return out
}

// Open declares an account, the currencies it may hold, and its booking
// method.
type Open struct {
	Account    string
	Currencies []string
	Booking    Booking
}

// Close declares that an account accepts no further postings.
type Close struct {
	Account string
}

// Commodity declares a currency.
type Commodity struct {
	Currency string
}

// Pad requests that the next balance assertion on Account be satisfied by a
// synthetic transfer from SourceAccount.
type Pad struct {
	Account       string
	SourceAccount string
}

// Balance asserts the running total of an account in one currency.
// DiffAmount is filled by the checker when the assertion fails
// (actual minus expected).
type Balance struct {
	Account    string
	Amount     Amount
	Tolerance  *decimal.Decimal
	DiffAmount *Amount
}

// Note attaches a dated comment to an account.
type Note struct {
	Account string
	Comment string
}

// Event sets the value of a named event variable.
type Event struct {
	Type        string
	Description string
}

// Query embeds a named query in the stream.
type Query struct {
	Name        string
	QueryString string
}

// Price declares the price of Currency in Amount's currency on the
// directive's date.
type Price struct {
	Currency string
	Amount   Amount
}

// Document links a file to an account.
type Document struct {
	Account  string
	Filename string
	Tags     []string
	Links    []string
}

// Custom is an escape hatch for typed experimental directives.
type Custom struct {
	Name   string
	Values []MetaValue
}

// Kind enumerates the directive union.
type Kind uint8

const (
	KindTransaction Kind = iota
	KindOpen
	KindClose
	KindCommodity
	KindPad
	KindBalance
	KindNote
	KindEvent
	KindQuery
	KindPrice
	KindDocument
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindTransaction:
		return "transaction"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindCommodity:
		return "commodity"
	case KindPad:
		return "pad"
	case KindBalance:
		return "balance"
	case KindNote:
		return "note"
	case KindEvent:
		return "event"
	case KindQuery:
		return "query"
	case KindPrice:
		return "price"
	case KindDocument:
		return "document"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Body is the directive union: exactly one concrete kind per directive.
type Body interface {
	Kind() Kind
}

func (*Transaction) Kind() Kind { return KindTransaction }
func (*Open) Kind() Kind        { return KindOpen }
func (*Close) Kind() Kind       { return KindClose }
func (*Commodity) Kind() Kind   { return KindCommodity }
func (*Pad) Kind() Kind         { return KindPad }
func (*Balance) Kind() Kind     { return KindBalance }
func (*Note) Kind() Kind        { return KindNote }
func (*Event) Kind() Kind       { return KindEvent }
func (*Query) Kind() Kind       { return KindQuery }
func (*Price) Kind() Kind       { return KindPrice }
func (*Document) Kind() Kind    { return KindDocument }
func (*Custom) Kind() Kind      { return KindCustom }

// Directive pairs a date and metadata with exactly one body. Once emitted on
// the output stream a directive is immutable; amendments construct a new one.
type Directive struct {
	Date Date
	Meta Meta
	Body Body
}

func NewDirective(date Date, meta Meta, body Body) Directive {
	if body == nil {
		panic("directive requires a body")
	}
	return Directive{Date: date, Meta: meta, Body: body}
}
