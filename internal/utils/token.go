package utils

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// NewInviteToken derives an opaque, unguessable invite token for a trip. The
// digest covers the host id, the trip date range, and a random nonce so two
// trips with identical attributes never share a token.
func NewInviteToken(hostID string, startDate, endDate time.Time) string {
	seed := fmt.Sprintf("%s|%s|%s|%s",
		hostID,
		startDate.Format(TripDateLayout),
		endDate.Format(TripDateLayout),
		uuid.NewString(),
	)
	digest := sha3.Sum256([]byte(seed))
	return base64.RawURLEncoding.EncodeToString(digest[:])
}
