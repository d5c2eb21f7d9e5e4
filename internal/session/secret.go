package session

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSecret creates a random 32-byte secret, hex encoded.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// ResolveSecret turns the configured secret into key bytes. Hex values are
// decoded, anything else is used as is. An empty value yields a fresh random
// key and generated is true; forms signed with it stop validating on restart.
func ResolveSecret(configured string) (key []byte, generated bool, err error) {
	if configured == "" {
		secret, err := GenerateSecret()
		if err != nil {
			return nil, false, err
		}
		key, _ = hex.DecodeString(secret)
		return key, true, nil
	}
	if key, err := hex.DecodeString(configured); err == nil {
		return key, false, nil
	}
	return []byte(configured), false, nil
}
