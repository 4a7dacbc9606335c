package auth

import (
	"crypto"
	"fmt"
	"os"

	jwt "github.com/golang-jwt/jwt/v5"
)

// KeyPair holds the asymmetric signing material. SigningKey stays on the
// issuing side only; verification uses VerifyKey exclusively.
type KeyPair struct {
	SigningKey crypto.PrivateKey
	VerifyKey  crypto.PublicKey
	Method     jwt.SigningMethod
}

// LoadKeyPair reads and parses the PEM key files for the given algorithm.
// Supported algorithms: RS256/RS384/RS512 and ES256/ES384/ES512.
func LoadKeyPair(privateKeyPath, publicKeyPath, algorithm string) (*KeyPair, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	privPEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	pubPEM, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	return ParseKeyPair(privPEM, pubPEM, algorithm)
}

// ParseKeyPair parses PEM-encoded key material for the given algorithm.
func ParseKeyPair(privPEM, pubPEM []byte, algorithm string) (*KeyPair, error) {
	method := jwt.GetSigningMethod(algorithm)

	switch method.(type) {
	case *jwt.SigningMethodRSA:
		priv, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
		if err != nil {
			return nil, fmt.Errorf("parse RSA private key: %w", err)
		}
		pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
		if err != nil {
			return nil, fmt.Errorf("parse RSA public key: %w", err)
		}
		return &KeyPair{SigningKey: priv, VerifyKey: pub, Method: method}, nil
	case *jwt.SigningMethodECDSA:
		priv, err := jwt.ParseECPrivateKeyFromPEM(privPEM)
		if err != nil {
			return nil, fmt.Errorf("parse ECDSA private key: %w", err)
		}
		pub, err := jwt.ParseECPublicKeyFromPEM(pubPEM)
		if err != nil {
			return nil, fmt.Errorf("parse ECDSA public key: %w", err)
		}
		return &KeyPair{SigningKey: priv, VerifyKey: pub, Method: method}, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
}
