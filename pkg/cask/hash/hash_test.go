package hash_test

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
)

func TestDigestMatchesProvider(t *testing.T) {
	h, err := hash.New("sha256")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := h.Update([]byte("hello ")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := h.Update([]byte("world")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := h.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	want := sha256.Sum256([]byte("hello world"))
	if !bytes.Equal(got, want[:]) {
		t.Fatal("digest does not match direct sha256")
	}
}

func TestDigestIsRepeatable(t *testing.T) {
	h, err := hash.New("sha512")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := h.Update([]byte("payload")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	first, err := h.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	second, err := h.Digest()
	if err != nil {
		t.Fatalf("second Digest: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("repeated Digest calls disagree")
	}
}

func TestUpdateAfterDigest(t *testing.T) {
	h, err := hash.New("sha3_256")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := h.Digest(); err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if err := h.Update([]byte("late")); !errors.Is(err, cask.ErrAlreadyFinalized) {
		t.Fatalf("Update after Digest: got %v, want ErrAlreadyFinalized", err)
	}
	if _, err := h.Copy(); !errors.Is(err, cask.ErrAlreadyFinalized) {
		t.Fatalf("Copy after Digest: got %v, want ErrAlreadyFinalized", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	h, err := hash.New("sha256")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := h.Update([]byte("common prefix")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	c, err := h.Copy()
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if err := h.Update([]byte(" A")); err != nil {
		t.Fatalf("Update original: %v", err)
	}
	if err := c.Update([]byte(" B")); err != nil {
		t.Fatalf("Update copy: %v", err)
	}

	dh, err := h.Digest()
	if err != nil {
		t.Fatalf("Digest original: %v", err)
	}
	dc, err := c.Digest()
	if err != nil {
		t.Fatalf("Digest copy: %v", err)
	}
	if bytes.Equal(dh, dc) {
		t.Fatal("diverged states produced equal digests")
	}

	wantA := sha256.Sum256([]byte("common prefix A"))
	if !bytes.Equal(dh, wantA[:]) {
		t.Fatal("original digest wrong after copy")
	}
	wantB := sha256.Sum256([]byte("common prefix B"))
	if !bytes.Equal(dc, wantB[:]) {
		t.Fatal("copy digest wrong")
	}
}

func TestRegistry(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		for _, name := range []string{"sha224", "sha256", "sha384", "sha512", "sha512_224", "sha512_256", "sha3_224", "sha3_256", "sha3_384", "sha3_512", "blake2b_256", "blake2b_384", "blake2b_512", "blake2s_256"} {
			algo, err := hash.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", name, err)
			}
			if algo.Name() != name {
				t.Fatalf("Lookup(%q) returned %q", name, algo.Name())
			}
			h := algo.New()
			if h.DigestSize() != algo.DigestSize() {
				t.Fatalf("%s: state digest size %d != algorithm %d", name, h.DigestSize(), algo.DigestSize())
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := hash.Lookup("md5"); err == nil {
			t.Fatal("Lookup(md5) succeeded; registry must not carry broken digests")
		}
	})

	t.Run("sizes", func(t *testing.T) {
		for name, want := range map[string]int{
			"sha256":      32,
			"sha384":      48,
			"sha512":      64,
			"sha512_224":  28,
			"sha3_512":    64,
			"blake2b_256": 32,
			"blake2s_256": 32,
		} {
			algo, err := hash.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", name, err)
			}
			if algo.DigestSize() != want {
				t.Fatalf("%s digest size %d, want %d", name, algo.DigestSize(), want)
			}
		}
	})

	t.Run("crypto-hash-mapping", func(t *testing.T) {
		if _, ok := hash.SHA256.CryptoHash(); !ok {
			t.Fatal("sha256 must map to a provider signature identifier")
		}
		var zero hash.Algorithm
		if _, ok := zero.CryptoHash(); ok {
			t.Fatal("zero Algorithm must not map to a signature identifier")
		}
	})
}
