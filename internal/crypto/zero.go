package crypto

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way. Call it on
// raw session keys before dropping the last reference.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
