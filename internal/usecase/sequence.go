package usecase

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
)

const (
	orderIDPrefix   = "ORD-"
	orderDateLayout = "2006-01-02"
)

// FormatOrderID builds a day-sequential identifier: the date with
// separators stripped followed by a zero-padded sequence number,
// e.g. ("2024-05-01", 3) -> "ORD-20240501003".
func FormatOrderID(date string, seq int) (string, error) {
	if _, err := time.Parse(orderDateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidDate, date)
	}
	stem := strings.ReplaceAll(date, "-", "")
	return fmt.Sprintf("%s%s%03d", orderIDPrefix, stem, seq), nil
}

// NextOrderID derives the next identifier for the given date from a
// history snapshot. Two submissions racing against the same snapshot can
// collide; the service is single-user by design, so this stays a known
// limitation rather than something to lock around.
func NextOrderID(date string, history []model.Order) (string, error) {
	count := 0
	for _, order := range history {
		if order.Date == date {
			count++
		}
	}
	return FormatOrderID(date, count+1)
}
