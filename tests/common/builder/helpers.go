//go:build unit || e2e

package builder

import (
	"fmt"

	"venue-scheduler/internal/domain/reservation"
)

// MustDate panics on a malformed literal so fixture mistakes surface at
// test startup rather than as silent zero values.
func MustDate(s string) reservation.Date {
	d, err := reservation.ParseDate(s)
	if err != nil {
		panic(fmt.Sprintf("builder: bad date literal %q: %v", s, err))
	}
	return d
}
