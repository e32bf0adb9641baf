package domain

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewBookingCode returns a display reference token: "DXE" plus six random
// digits. It is not a primary key and carries no collision guarantee; the
// notification email is the durable record of a booking.
func NewBookingCode() string {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; keep a stable
		// fallback rather than panicking in the request path.
		return "DXE100000"
	}
	n := binary.BigEndian.Uint32(b[:])%900000 + 100000
	return fmt.Sprintf("DXE%d", n)
}
