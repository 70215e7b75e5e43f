package models

// RateRequest holds the currency pair of a single rate query. Codes are taken
// as sent; no format validation happens.
type RateRequest struct {
	Source      string
	Destination string
}

type RateResponse struct {
	Status int
	Body   string
}
