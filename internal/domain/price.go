package domain

import "time"

// Price is one archived quote sample.
type Price struct {
	Symbol    string    `json:"symbol"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}
