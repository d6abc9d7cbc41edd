package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MetaKind identifies which variant of a MetaValue is set.
type MetaKind uint8

const (
	MetaText MetaKind = iota
	MetaAccount
	MetaCurrency
	MetaTag
	MetaLink
	MetaFlag
	MetaDate
	MetaBoolean
	MetaInteger
	MetaNumber
	MetaAmount
)

func (k MetaKind) String() string {
	switch k {
	case MetaText:
		return "text"
	case MetaAccount:
		return "account"
	case MetaCurrency:
		return "currency"
	case MetaTag:
		return "tag"
	case MetaLink:
		return "link"
	case MetaFlag:
		return "flag"
	case MetaDate:
		return "date"
	case MetaBoolean:
		return "boolean"
	case MetaInteger:
		return "integer"
	case MetaNumber:
		return "number"
	case MetaAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// TypeMismatchError is returned when a MetaValue accessor requests a variant
// other than the one set.
type TypeMismatchError struct {
	Want MetaKind
	Got  MetaKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("metadata type mismatch: want %s, got %s", e.Want, e.Got)
}

// MetaValue is a closed tagged union with 11 variants. Exactly one variant
// is set; accessors for any other variant fail with TypeMismatchError.
type MetaValue struct {
	kind    MetaKind
	str     string // text, account, currency, tag, link, flag
	date    Date
	boolean bool
	integer int64
	number  decimal.Decimal
	amount  Amount
}

func TextValue(s string) MetaValue     { return MetaValue{kind: MetaText, str: s} }
func AccountValue(s string) MetaValue  { return MetaValue{kind: MetaAccount, str: s} }
func CurrencyValue(s string) MetaValue { return MetaValue{kind: MetaCurrency, str: s} }
func TagValue(s string) MetaValue      { return MetaValue{kind: MetaTag, str: s} }
func LinkValue(s string) MetaValue     { return MetaValue{kind: MetaLink, str: s} }
func FlagValue(s string) MetaValue     { return MetaValue{kind: MetaFlag, str: s} }

func DateValue(d Date) MetaValue {
	return MetaValue{kind: MetaDate, date: d}
}

func BoolValue(b bool) MetaValue {
	return MetaValue{kind: MetaBoolean, boolean: b}
}

func IntValue(i int64) MetaValue {
	return MetaValue{kind: MetaInteger, integer: i}
}

func NumberValue(n decimal.Decimal) MetaValue {
	return MetaValue{kind: MetaNumber, number: n}
}

func AmountValue(a Amount) MetaValue {
	return MetaValue{kind: MetaAmount, amount: a}
}

func (v MetaValue) Kind() MetaKind { return v.kind }

func (v MetaValue) stringVariant(want MetaKind) (string, error) {
	if v.kind != want {
		return "", &TypeMismatchError{Want: want, Got: v.kind}
	}
	return v.str, nil
}

func (v MetaValue) Text() (string, error)     { return v.stringVariant(MetaText) }
func (v MetaValue) Account() (string, error)  { return v.stringVariant(MetaAccount) }
func (v MetaValue) Currency() (string, error) { return v.stringVariant(MetaCurrency) }
func (v MetaValue) Tag() (string, error)      { return v.stringVariant(MetaTag) }
func (v MetaValue) Link() (string, error)     { return v.stringVariant(MetaLink) }
func (v MetaValue) Flag() (string, error)     { return v.stringVariant(MetaFlag) }

func (v MetaValue) Date() (Date, error) {
	if v.kind != MetaDate {
		return Date{}, &TypeMismatchError{Want: MetaDate, Got: v.kind}
	}
	return v.date, nil
}

func (v MetaValue) Bool() (bool, error) {
	if v.kind != MetaBoolean {
		return false, &TypeMismatchError{Want: MetaBoolean, Got: v.kind}
	}
	return v.boolean, nil
}

func (v MetaValue) Int() (int64, error) {
	if v.kind != MetaInteger {
		return 0, &TypeMismatchError{Want: MetaInteger, Got: v.kind}
	}
	return v.integer, nil
}

func (v MetaValue) Number() (decimal.Decimal, error) {
	if v.kind != MetaNumber {
		return decimal.Decimal{}, &TypeMismatchError{Want: MetaNumber, Got: v.kind}
	}
	return v.number, nil
}

func (v MetaValue) Amount() (Amount, error) {
	if v.kind != MetaAmount {
		return Amount{}, &TypeMismatchError{Want: MetaAmount, Got: v.kind}
	}
	return v.amount, nil
}

// KV is one metadata entry.
type KV struct {
	Key   string
	Value MetaValue
}

// Meta is an ordered sequence of (key, MetaValue) pairs. Keys are not
// guaranteed unique: lookup returns the last occurrence, iteration over the
// slice preserves insertion order and all occurrences.
type Meta []KV

// Get returns the last occurrence of key.
func (m Meta) Get(key string) (MetaValue, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return MetaValue{}, false
}

func (m Meta) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Add appends an entry, keeping any prior occurrences of the key.
func (m *Meta) Add(key string, value MetaValue) {
	*m = append(*m, KV{Key: key, Value: value})
}
