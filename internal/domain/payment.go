package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	metadataKeyUserID = "user_id"
	metadataKeyShowID = "show_id"
	metadataKeySeats  = "seats"
)

// CheckoutMetadata is the purchase state carried on the payment provider's
// checkout session. It is written when the session is created and read back
// at confirmation time, so that the client-returned session reference is
// the only input that ever has to be trusted.
type CheckoutMetadata struct {
	UserID int
	ShowID int
	Seats  []string
}

func (m CheckoutMetadata) Encode() map[string]string {
	return map[string]string{
		metadataKeyUserID: strconv.Itoa(m.UserID),
		metadataKeyShowID: strconv.Itoa(m.ShowID),
		metadataKeySeats:  strings.Join(m.Seats, ","),
	}
}

func ParseCheckoutMetadata(md map[string]string) (CheckoutMetadata, error) {
	var m CheckoutMetadata

	userID, err := strconv.Atoi(md[metadataKeyUserID])
	if err != nil {
		return m, fmt.Errorf("checkout metadata: invalid user id %q", md[metadataKeyUserID])
	}

	showID, err := strconv.Atoi(md[metadataKeyShowID])
	if err != nil {
		return m, fmt.Errorf("checkout metadata: invalid show id %q", md[metadataKeyShowID])
	}

	seats := strings.Split(md[metadataKeySeats], ",")
	if len(seats) == 1 && seats[0] == "" {
		return m, fmt.Errorf("checkout metadata: missing seats")
	}

	m.UserID = userID
	m.ShowID = showID
	m.Seats = seats

	return m, nil
}
