package kdf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
	"github.com/cask-crypto/cask-go/pkg/cask/kdf"
)

var (
	master = []byte("0123456789abcdef0123456789abcdef")
	salt   = []byte("unique-nonce")
)

func TestDerive(t *testing.T) {
	pair, err := kdf.Derive(master, salt, hash.SHA256, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	defer pair.Destroy()

	if len(pair.EncKey) != 32 {
		t.Fatalf("EncKey length %d, want 32", len(pair.EncKey))
	}
	if len(pair.AuthKey) != hash.SHA256.DigestSize() {
		t.Fatalf("AuthKey length %d, want digest size %d", len(pair.AuthKey), hash.SHA256.DigestSize())
	}
	if bytes.Equal(pair.EncKey, pair.AuthKey) {
		t.Fatal("subkeys must be independent")
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	a, err := kdf.Derive(master, salt, hash.SHA256, 16)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	defer a.Destroy()
	b, err := kdf.Derive(master, salt, hash.SHA256, 16)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	defer b.Destroy()

	if !bytes.Equal(a.EncKey, b.EncKey) || !bytes.Equal(a.AuthKey, b.AuthKey) {
		t.Fatal("same inputs must derive the same pair")
	}
}

func TestDeriveSaltSeparation(t *testing.T) {
	a, err := kdf.Derive(master, []byte("salt-one"), hash.SHA256, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	defer a.Destroy()
	b, err := kdf.Derive(master, []byte("salt-two"), hash.SHA256, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	defer b.Destroy()

	if bytes.Equal(a.EncKey, b.EncKey) {
		t.Fatal("different salts produced the same encryption subkey")
	}
}

func TestDeriveBound(t *testing.T) {
	// HKDF-Expand caps output at 255 blocks of the digest size.
	_, err := kdf.Derive(master, salt, hash.SHA256, 255*32+1)
	if !errors.Is(err, cask.ErrDerivation) {
		t.Fatalf("oversized request: got %v, want ErrDerivation", err)
	}

	pair, err := kdf.Derive(master, salt, hash.SHA256, 255*32)
	if err != nil {
		t.Fatalf("request at the bound must succeed: %v", err)
	}
	pair.Destroy()
}

func TestDeriveValidation(t *testing.T) {
	if _, err := kdf.Derive(master, salt, hash.Algorithm{}, 32); err == nil {
		t.Fatal("zero algorithm must be rejected")
	}
	if _, err := kdf.Derive(master, salt, hash.SHA256, 0); err == nil {
		t.Fatal("zero key length must be rejected")
	}
}

func TestDestroyZeroizes(t *testing.T) {
	pair, err := kdf.Derive(master, salt, hash.SHA256, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	enc, auth := pair.EncKey, pair.AuthKey
	pair.Destroy()

	if pair.EncKey != nil || pair.AuthKey != nil {
		t.Fatal("Destroy must nil out the pair")
	}
	for _, buf := range [][]byte{enc, auth} {
		for _, b := range buf {
			if b != 0 {
				t.Fatal("Destroy must zeroize the subkey bytes")
			}
		}
	}
}
