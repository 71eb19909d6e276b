// Package model holds the records shared by the store, the HTTP API and the ingest loop.
package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateLayout is the wire and storage representation of an order date.
const DateLayout = "2006-01-02"

// TagMarker prefixes every tag value in the aggregated order listing.
const TagMarker = "🏷 "

// TagSeparator joins the marked tag values of one order.
const TagSeparator = ", "

type Order struct {
	ID    int64     `json:"id"`
	Code  string    `json:"code"`
	Date  time.Time `json:"date"`
	Email string    `json:"email"`
}

type Tag struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// OrderTags is one row of the aggregated listing: an order plus its marked tag values
// concatenated into a single string.
type OrderTags struct {
	ID    int64
	Code  string
	Date  time.Time
	Email string
	Tags  string
}

// Row renders the aggregated row as the positional array served by the index endpoint.
func (o OrderTags) Row() []any {
	return []any{o.ID, o.Code, o.Date.Format(DateLayout), o.Email, o.Tags}
}

// Overview is everything the index endpoint shows.
type Overview struct {
	TagValues []string
	Orders    []OrderTags
}

// TagInput is the body of a create tag request.
type TagInput struct {
	TagValue *string `json:"tag_value" schema:"tag_value"`
}

// OrderTagInput is the body of an associate tag request.
type OrderTagInput struct {
	OrderID *ID `json:"order_id" schema:"order_id"`
	TagID   *ID `json:"tag_id" schema:"tag_id"`
}

// ID is a record id read from a request body. Besides a plain JSON integer it
// accepts a numeric string ("1") and an integral float (1.0).
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		b = []byte(s)
	}
	return id.UnmarshalText(b)
}

func (id *ID) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*id = ID(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("value is not a valid integer: %q", s)
	}
	*id = ID(f)
	return nil
}

// OrderMessage is the Kafka payload of an externally seeded order.
type OrderMessage struct {
	Code  string `json:"code"`
	Date  string `json:"date"`
	Email string `json:"email"`
}

// NewOrderMessage converts an order into its Kafka payload.
func NewOrderMessage(o Order) OrderMessage {
	return OrderMessage{Code: o.Code, Date: o.Date.Format(DateLayout), Email: o.Email}
}

// Order parses the message into an order. The id is left for the store to assign.
func (m OrderMessage) Order() (Order, error) {
	d, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return Order{}, fmt.Errorf("date: %w", err)
	}
	return Order{Code: m.Code, Date: d, Email: m.Email}, nil
}
