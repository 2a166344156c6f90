package bot

import (
	"crypto/ed25519"
	"encoding/hex"
)

const (
	headerSignature = "X-Signature-Ed25519"
	headerTimestamp = "X-Signature-Timestamp"
)

// verifySignature checks Discord's Ed25519 signature over the timestamp
// concatenated with the raw body. Anything short of a valid signature
// fails closed.
func verifySignature(key ed25519.PublicKey, signature, timestamp string, body []byte) bool {
	if signature == "" || timestamp == "" {
		return false
	}
	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(key, msg, sig)
}
