package repository

import "time"

// Entry is a row of the key-value store.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
