package keys

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// InitPublicKey loads the identity provider's token signing key.
	InitPublicKey = sync.OnceValues(func() (*rsa.PublicKey, error) {
		verifyBytes, err := decodeEnv("RSA_PUBLIC_KEY")
		if err != nil {
			return nil, err
		}
		return jwt.ParseRSAPublicKeyFromPEM(verifyBytes)
	})

	// InitPrivateKey is only needed to mint development tokens.
	InitPrivateKey = sync.OnceValues(func() (*rsa.PrivateKey, error) {
		signBytes, err := decodeEnv("RSA_PRIVATE_KEY")
		if err != nil {
			return nil, err
		}
		return jwt.ParseRSAPrivateKeyFromPEM(signBytes)
	})
)

func decodeEnv(key string) ([]byte, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil, errors.New("env " + key + " is required")
	}
	return base64.StdEncoding.DecodeString(value)
}
