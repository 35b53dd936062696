package utils

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	bookingReferenceLength   = 6
	bookingReferenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateBookingReference returns a 6 character upper-case alphanumeric
// reference such as "K3X9QZ". Uniqueness is enforced by the database.
func GenerateBookingReference() string {
	ref := make([]byte, bookingReferenceLength)
	for i := range ref {
		ref[i] = bookingReferenceAlphabet[rand.IntN(len(bookingReferenceAlphabet))]
	}
	return string(ref)
}
