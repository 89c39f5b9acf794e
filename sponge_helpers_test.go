package nanosha3 //nolint:testpackage // testing internals

import (
	"encoding/hex"
)

// State renders the sponge's state as a string, with ^ marking the next rate
// byte and | marking the rate/capacity boundary.
func State(s *Sponge) string {
	return hex.EncodeToString(s.state[:s.idx]) + "^" + hex.EncodeToString(s.state[s.idx:rate]) + "|" + hex.EncodeToString(s.state[rate:])
}
