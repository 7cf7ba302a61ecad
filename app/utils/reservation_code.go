package utils

import (
	"fmt"
	"math/rand"
)

// GenerateReservationCode produces the external reservation identifier handed
// to the guest: a fixed prefix plus a random 6-digit number. Uniqueness is
// enforced by the database index, not here.
func GenerateReservationCode() string {
	return fmt.Sprintf("RSV%06d", rand.Intn(1000000))
}
