package ingestion

import (
	"encoding/json"
	"fmt"

	"BeanLedger/internal/model"
)

// EncodeDirective renders a directive into the same wire JSON the parser
// accepts, so booked output can be replayed or consumed downstream.
func EncodeDirective(d model.Directive) ([]byte, error) {
	j := directiveJSON{
		Date: d.Date.String(),
		Kind: d.Body.Kind().String(),
	}
	meta, err := encodeMeta(d.Meta)
	if err != nil {
		return nil, err
	}
	j.Meta = meta

	switch body := d.Body.(type) {
	case *model.Transaction:
		txn, err := encodeTransaction(body)
		if err != nil {
			return nil, err
		}
		j.Transaction = txn
	case *model.Open:
		j.Open = &openJSON{
			Account:    body.Account,
			Currencies: body.Currencies,
			Booking:    body.Booking.String(),
		}
	case *model.Close:
		j.Close = &closeJSON{Account: body.Account}
	case *model.Commodity:
		j.Commodity = &commodityJSON{Currency: body.Currency}
	case *model.Pad:
		j.Pad = &padJSON{Account: body.Account, SourceAccount: body.SourceAccount}
	case *model.Balance:
		j.Balance = encodeBalance(body)
	case *model.Note:
		j.Note = &noteJSON{Account: body.Account, Comment: body.Comment}
	case *model.Event:
		j.Event = &eventJSON{Type: body.Type, Description: body.Description}
	case *model.Query:
		j.Query = &queryJSON{Name: body.Name, QueryString: body.QueryString}
	case *model.Price:
		j.Price = &priceJSON{Currency: body.Currency, Amount: encodeAmount(body.Amount)}
	case *model.Document:
		j.Document = &documentJSON{
			Account:  body.Account,
			Filename: body.Filename,
			Tags:     body.Tags,
			Links:    body.Links,
		}
	case *model.Custom:
		custom, err := encodeCustom(body)
		if err != nil {
			return nil, err
		}
		j.Custom = custom
	default:
		return nil, fmt.Errorf("unknown directive kind: %s", d.Body.Kind())
	}

	return json.Marshal(&j)
}

func encodeAmount(a model.Amount) amountJSON {
	return amountJSON{Number: a.Number.String(), Currency: a.Currency}
}

func encodeCost(c model.Cost) *costJSON {
	return &costJSON{
		Number:   c.Number.String(),
		Currency: c.Currency,
		Date:     c.Date.String(),
		Label:    c.Label,
	}
}

func encodeCostSpec(spec *model.CostSpec) *costSpecJSON {
	j := &costSpecJSON{Currency: spec.Currency, Label: spec.Label}
	if spec.Number != nil {
		s := spec.Number.String()
		j.Number = &s
	}
	if spec.Date != nil {
		s := spec.Date.String()
		j.Date = &s
	}
	return j
}

func encodeTransaction(t *model.Transaction) (*transactionJSON, error) {
	j := &transactionJSON{
		Flag:      t.Flag,
		Payee:     t.Payee,
		Narration: t.Narration,
		Tags:      t.Tags,
		Links:     t.Links,
		Postings:  make([]postingJSON, 0, len(t.Postings)),
	}
	for i := range t.Postings {
		p, err := encodePosting(&t.Postings[i])
		if err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		j.Postings = append(j.Postings, p)
	}
	return j, nil
}

func encodePosting(p *model.Posting) (postingJSON, error) {
	j := postingJSON{Flag: p.Flag, Account: p.Account}

	meta, err := encodeMeta(p.Meta)
	if err != nil {
		return postingJSON{}, err
	}
	j.Meta = meta

	if p.Date != nil {
		s := p.Date.String()
		j.Date = &s
	}
	if !p.Units.IsEmpty() {
		units := encodeAmount(p.Units)
		j.Units = &units
	}
	if p.Cost != nil {
		j.Cost = encodeCost(*p.Cost)
	}
	if p.CostSpec != nil {
		j.CostSpec = encodeCostSpec(p.CostSpec)
	}
	if p.Price != nil {
		price := encodeAmount(*p.Price)
		j.Price = &price
	}
	return j, nil
}

func encodeBalance(b *model.Balance) *balanceJSON {
	j := &balanceJSON{Account: b.Account, Amount: encodeAmount(b.Amount)}
	if b.Tolerance != nil {
		s := b.Tolerance.String()
		j.Tolerance = &s
	}
	if b.DiffAmount != nil {
		diff := encodeAmount(*b.DiffAmount)
		j.DiffAmount = &diff
	}
	return j
}

func encodeCustom(c *model.Custom) (*customJSON, error) {
	j := &customJSON{Name: c.Name}
	for i, v := range c.Values {
		kv, err := encodeMetaValue("", v)
		if err != nil {
			return nil, fmt.Errorf("custom value %d: %w", i, err)
		}
		j.Values = append(j.Values, kv)
	}
	return j, nil
}

func encodeMeta(meta model.Meta) ([]kvJSON, error) {
	if len(meta) == 0 {
		return nil, nil
	}
	out := make([]kvJSON, 0, len(meta))
	for _, kv := range meta {
		j, err := encodeMetaValue(kv.Key, kv.Value)
		if err != nil {
			return nil, fmt.Errorf("meta %q: %w", kv.Key, err)
		}
		out = append(out, j)
	}
	return out, nil
}

func encodeMetaValue(key string, v model.MetaValue) (kvJSON, error) {
	j := kvJSON{Key: key, Type: v.Kind().String()}

	var payload interface{}
	switch v.Kind() {
	case model.MetaText:
		payload, _ = v.Text()
	case model.MetaAccount:
		payload, _ = v.Account()
	case model.MetaCurrency:
		payload, _ = v.Currency()
	case model.MetaTag:
		payload, _ = v.Tag()
	case model.MetaLink:
		payload, _ = v.Link()
	case model.MetaFlag:
		payload, _ = v.Flag()
	case model.MetaDate:
		d, _ := v.Date()
		payload = d.String()
	case model.MetaBoolean:
		payload, _ = v.Bool()
	case model.MetaInteger:
		payload, _ = v.Int()
	case model.MetaNumber:
		n, _ := v.Number()
		payload = n.String()
	case model.MetaAmount:
		a, _ := v.Amount()
		payload = encodeAmount(a)
	default:
		return kvJSON{}, fmt.Errorf("unknown metadata kind: %s", v.Kind())
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return kvJSON{}, err
	}
	j.Value = raw
	return j, nil
}
