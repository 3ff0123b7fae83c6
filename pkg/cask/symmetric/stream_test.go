package symmetric_test

import (
	"bytes"
	stdaes "crypto/aes"
	"crypto/cipher"
	"errors"
	"testing"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/symmetric"
)

var (
	testKey = []byte("0123456789abcdef0123456789abcdef")
	testIV  = []byte("16-byte-iv-value")
)

func ctrStream(t *testing.T, key, iv []byte) cipher.Stream {
	t.Helper()
	block, err := stdaes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	return cipher.NewCTR(block, iv)
}

func TestStreamRoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	enc, err := symmetric.NewStream(cask.Encrypt, ctrStream(t, testKey, testIV))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	ct, err := enc.Update(plaintext)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if bytes.Equal(ct, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}
	if err := enc.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	dec, err := symmetric.NewStream(cask.Decrypt, ctrStream(t, testKey, testIV))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	pt, err := dec.Update(ct)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Fatal("round trip mismatch")
	}
}

func TestStreamChunkingEquivalence(t *testing.T) {
	plaintext := bytes.Repeat([]byte("abcdefgh"), 13)

	whole, err := symmetric.NewStream(cask.Encrypt, ctrStream(t, testKey, testIV))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	want, err := whole.Update(plaintext)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	for _, size := range []int{1, 17, len(plaintext)} {
		chunked, err := symmetric.NewStream(cask.Encrypt, ctrStream(t, testKey, testIV))
		if err != nil {
			t.Fatalf("NewStream: %v", err)
		}
		var got []byte
		for start := 0; start < len(plaintext); start += size {
			end := min(start+size, len(plaintext))
			out, err := chunked.Update(plaintext[start:end])
			if err != nil {
				t.Fatalf("chunk size %d: Update: %v", size, err)
			}
			got = append(got, out...)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("chunk size %d: output differs from single-shot", size)
		}
	}
}

func TestStreamUpdateInto(t *testing.T) {
	plaintext := []byte("in-place transform payload")

	enc, err := symmetric.NewStream(cask.Encrypt, ctrStream(t, testKey, testIV))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	want, err := enc.Update(plaintext)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	inPlace, err := symmetric.NewStream(cask.Encrypt, ctrStream(t, testKey, testIV))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	buf := append([]byte(nil), plaintext...)
	if err := inPlace.UpdateInto(buf, buf); err != nil {
		t.Fatalf("UpdateInto: %v", err)
	}
	if !bytes.Equal(buf, want) {
		t.Fatal("in-place output differs from allocating path")
	}

	short := make([]byte, len(plaintext)-1)
	if err := inPlace.UpdateInto(plaintext, short); err == nil {
		t.Fatal("short output buffer must be rejected")
	}
}

func TestStreamFinalizeOnce(t *testing.T) {
	c, err := symmetric.NewStream(cask.Encrypt, ctrStream(t, testKey, testIV))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := c.Finalize(); !errors.Is(err, cask.ErrAlreadyFinalized) {
		t.Fatalf("second Finalize: got %v, want ErrAlreadyFinalized", err)
	}
	if _, err := c.Update([]byte("late")); !errors.Is(err, cask.ErrAlreadyFinalized) {
		t.Fatalf("Update after Finalize: got %v, want ErrAlreadyFinalized", err)
	}
	if err := c.UpdateInto([]byte("late"), make([]byte, 4)); !errors.Is(err, cask.ErrAlreadyFinalized) {
		t.Fatalf("UpdateInto after Finalize: got %v, want ErrAlreadyFinalized", err)
	}
}
