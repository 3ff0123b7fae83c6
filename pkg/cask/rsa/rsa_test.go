package rsa_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
	"github.com/cask-crypto/cask-go/pkg/cask/rsa"
)

// Key generation dominates test time; every test shares one 2048-bit key.
var testKey = sync.OnceValue(func() *rsa.PrivateKey {
	key, err := rsa.GenerateKey(2048)
	if err != nil {
		panic(err)
	}
	return key
})

func digestOf(t *testing.T, algo hash.Algorithm, msg []byte) hash.Hash {
	t.Helper()
	h := algo.New()
	require.NoError(t, h.Update(msg))
	return h
}

func TestGenerateKey(t *testing.T) {
	key := testKey()
	require.Equal(t, 256, key.Size())
	require.Equal(t, 256, key.Public().Size())

	_, err := rsa.GenerateKey(1024)
	require.Error(t, err, "undersized keys must be refused")
}

func TestPSSSignVerify(t *testing.T) {
	key := testKey()
	msg := []byte("signed message")

	signer, err := key.Signer(rsa.PSS{})
	require.NoError(t, err)
	sig, err := signer.Sign(digestOf(t, hash.SHA256, msg))
	require.NoError(t, err)
	require.Len(t, sig, key.Size())

	verifier, err := key.Public().Verifier(rsa.PSS{})
	require.NoError(t, err)
	require.NoError(t, verifier.Verify(digestOf(t, hash.SHA256, msg), sig))

	t.Run("signature-flip", func(t *testing.T) {
		bad := append([]byte(nil), sig...)
		bad[10] ^= 0x01
		err := verifier.Verify(digestOf(t, hash.SHA256, msg), bad)
		require.ErrorIs(t, err, cask.ErrSignature)
	})

	t.Run("message-mismatch", func(t *testing.T) {
		err := verifier.Verify(digestOf(t, hash.SHA256, []byte("other message")), sig)
		require.ErrorIs(t, err, cask.ErrSignature)
	})

	t.Run("digest-algo-mismatch", func(t *testing.T) {
		err := verifier.Verify(digestOf(t, hash.SHA384, msg), sig)
		require.ErrorIs(t, err, cask.ErrSignature)
	})
}

func TestPSSSaltLengths(t *testing.T) {
	key := testKey()
	msg := []byte("salted message")

	for _, salt := range []int{0, 32} {
		signer, err := key.Signer(rsa.PSS{SaltLength: salt})
		require.NoError(t, err)
		sig, err := signer.Sign(digestOf(t, hash.SHA256, msg))
		require.NoError(t, err)

		verifier, err := key.Public().Verifier(rsa.PSS{SaltLength: salt})
		require.NoError(t, err)
		require.NoError(t, verifier.Verify(digestOf(t, hash.SHA256, msg), sig))
	}

	_, err := key.Signer(rsa.PSS{SaltLength: -1})
	require.Error(t, err, "negative salt must be refused")
}

func TestPSSMGFConstraint(t *testing.T) {
	key := testKey()

	// The provider only supports MGF1 over the digest hash itself.
	signer, err := key.Signer(rsa.PSS{MGF: rsa.MGF1{Hash: hash.SHA512}})
	require.NoError(t, err)
	_, err = signer.Sign(digestOf(t, hash.SHA256, []byte("msg")))
	require.Error(t, err)
}

func TestSignRequiresRegistryHash(t *testing.T) {
	key := testKey()
	signer, err := key.Signer(rsa.PSS{})
	require.NoError(t, err)

	_, err = signer.Sign(nil)
	require.Error(t, err)
}

func TestOAEPRoundTrip(t *testing.T) {
	key := testKey()
	msg := []byte("wrapped session key")

	enc, err := key.Public().Encryptor(rsa.OAEP{})
	require.NoError(t, err)
	ct, err := enc.Encrypt(msg)
	require.NoError(t, err)
	require.Len(t, ct, key.Size())

	dec, err := key.Decryptor(rsa.OAEP{})
	require.NoError(t, err)
	pt, err := dec.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, msg, pt)

	t.Run("ciphertext-flip", func(t *testing.T) {
		bad := append([]byte(nil), ct...)
		bad[0] ^= 0x01
		_, err := dec.Decrypt(bad)
		require.ErrorIs(t, err, cask.ErrDecryption)
	})

	t.Run("label-mismatch", func(t *testing.T) {
		labeled, err := key.Public().Encryptor(rsa.OAEP{Label: []byte("ctx-a")})
		require.NoError(t, err)
		ct, err := labeled.Encrypt(msg)
		require.NoError(t, err)

		wrongLabel, err := key.Decryptor(rsa.OAEP{Label: []byte("ctx-b")})
		require.NoError(t, err)
		_, err = wrongLabel.Decrypt(ct)
		require.ErrorIs(t, err, cask.ErrDecryption)
	})

	t.Run("mgf-mismatch-refused", func(t *testing.T) {
		_, err := key.Public().Encryptor(rsa.OAEP{Hash: hash.SHA256, MGF: rsa.MGF1{Hash: hash.SHA512}})
		require.Error(t, err)
	})
}

func TestKeySerialization(t *testing.T) {
	key := testKey()
	msg := []byte("serialization probe")

	for _, enc := range []rsa.Encoding{rsa.PEM, rsa.DER} {
		private, err := key.Export(enc)
		require.NoError(t, err)
		restored, err := rsa.ImportPrivateKey(private)
		require.NoError(t, err)
		cask.ZeroizeBytes(private)

		public, err := key.Public().Export(enc)
		require.NoError(t, err)
		restoredPub, err := rsa.ImportPublicKey(public)
		require.NoError(t, err)

		// A signature from the restored private key must verify under the
		// restored public key.
		signer, err := restored.Signer(rsa.PSS{})
		require.NoError(t, err)
		sig, err := signer.Sign(digestOf(t, hash.SHA256, msg))
		require.NoError(t, err)
		verifier, err := restoredPub.Verifier(rsa.PSS{})
		require.NoError(t, err)
		require.NoError(t, verifier.Verify(digestOf(t, hash.SHA256, msg), sig))
	}

	t.Run("garbage", func(t *testing.T) {
		_, err := rsa.ImportPrivateKey([]byte("not a key"))
		require.Error(t, err)
		_, err = rsa.ImportPublicKey(nil)
		require.Error(t, err)
	})
}
