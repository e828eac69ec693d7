package shipment

import (
	"crypto/rand"
	"fmt"
	"time"
)

// trackingAlphabet is the character space for the random suffix of a
// tracking number: uppercase letters and digits.
const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// trackingSuffixLength is the number of random characters in a tracking
// number.
const trackingSuffixLength = 8

// NewTrackingNumber generates a collision-resistant, human-readable
// tracking code of the form SHP-YYYYMMDD-XXXXXXXX, where the suffix is
// eight random characters from trackingAlphabet. Tracking numbers are
// assigned exactly once at creation and never client-supplied.
func NewTrackingNumber() string {
	buf := make([]byte, trackingSuffixLength)
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return fmt.Sprintf("SHP-%s-%s", time.Now().Format("20060102"), buf)
}
