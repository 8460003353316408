package services

import "math/rand"

// RandomOrderNumber draws a candidate 6-digit order number. Uniqueness is
// enforced by the unique index on orders.number: creation retries with a
// fresh draw when the insert reports a duplicate key. A variable so tests
// can pin the sequence.
var RandomOrderNumber = func() int {
	return rand.Intn(900000) + 100000
}
