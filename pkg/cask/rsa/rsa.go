package rsa

import (
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/cask-crypto/cask-go/pkg/cask"
)

// PrivateKey wraps an RSA private key. Its capabilities are signing and
// decryption; verification and encryption only exist on PublicKey, so using
// the wrong key kind for an operation is not expressible.
type PrivateKey struct {
	key *stdrsa.PrivateKey
}

// PublicKey wraps an RSA public key.
type PublicKey struct {
	key *stdrsa.PublicKey
}

// GenerateKey generates an RSA key pair with public exponent 65537.
//
// Recommended sizes: 2048 minimum, 3072 for long-term security, 4096 for
// high-security applications.
func GenerateKey(bits int) (*PrivateKey, error) {
	if bits < 2048 {
		return nil, cask.Errorf("rsa.GenerateKey", "key size must be at least 2048 bits, got %d", bits)
	}
	key, err := stdrsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, cask.Errorf("rsa.GenerateKey", "%w", err)
	}
	return &PrivateKey{key: key}, nil
}

// Public returns the public half of the key.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{key: &k.key.PublicKey}
}

// Size returns the modulus size in bytes.
func (k *PrivateKey) Size() int { return k.key.Size() }

// Size returns the modulus size in bytes.
func (k *PublicKey) Size() int { return k.key.Size() }

// Encoding selects the outer encoding for serialized keys.
type Encoding int

const (
	// PEM wraps the DER structure in a PEM block.
	PEM Encoding = iota + 1
	// DER emits the raw DER structure.
	DER
)

// Export serializes the private key as PKCS#8. The returned buffer contains
// private material; callers should zeroize it with cask.ZeroizeBytes when
// done.
func (k *PrivateKey) Export(enc Encoding) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(k.key)
	if err != nil {
		return nil, cask.Errorf("rsa.Export", "%w", err)
	}
	return encode(enc, "PRIVATE KEY", der)
}

// Export serializes the public key as PKIX.
func (k *PublicKey) Export(enc Encoding) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(k.key)
	if err != nil {
		return nil, cask.Errorf("rsa.Export", "%w", err)
	}
	return encode(enc, "PUBLIC KEY", der)
}

// ImportPrivateKey parses a PKCS#8 or PKCS#1 private key, PEM or DER.
func ImportPrivateKey(data []byte) (*PrivateKey, error) {
	der, err := decode(data)
	if err != nil {
		return nil, err
	}
	if key, perr := x509.ParsePKCS8PrivateKey(der); perr == nil {
		rk, ok := key.(*stdrsa.PrivateKey)
		if !ok {
			return nil, cask.Errorf("rsa.ImportPrivateKey", "not an RSA private key")
		}
		return &PrivateKey{key: rk}, nil
	}
	rk, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, cask.Errorf("rsa.ImportPrivateKey", "%w", err)
	}
	return &PrivateKey{key: rk}, nil
}

// ImportPublicKey parses a PKIX or PKCS#1 public key, PEM or DER.
func ImportPublicKey(data []byte) (*PublicKey, error) {
	der, err := decode(data)
	if err != nil {
		return nil, err
	}
	if key, perr := x509.ParsePKIXPublicKey(der); perr == nil {
		rk, ok := key.(*stdrsa.PublicKey)
		if !ok {
			return nil, cask.Errorf("rsa.ImportPublicKey", "not an RSA public key")
		}
		return &PublicKey{key: rk}, nil
	}
	rk, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, cask.Errorf("rsa.ImportPublicKey", "%w", err)
	}
	return &PublicKey{key: rk}, nil
}

func encode(enc Encoding, pemType string, der []byte) ([]byte, error) {
	switch enc {
	case DER:
		return der, nil
	case PEM:
		return pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: der}), nil
	default:
		return nil, cask.Errorf("rsa.Export", "unsupported encoding %d", enc)
	}
}

func decode(data []byte) ([]byte, error) {
	if block, _ := pem.Decode(data); block != nil {
		return block.Bytes, nil
	}
	if len(data) == 0 {
		return nil, cask.Errorf("rsa.Import", "empty key data")
	}
	return data, nil
}
