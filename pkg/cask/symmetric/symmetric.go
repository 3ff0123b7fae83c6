package symmetric

import (
	"github.com/cask-crypto/cask-go/pkg/cask"
)

// Cipher is the contract shared by every symmetric cipher context. The
// direction is fixed at construction; a context never switches between
// encrypting and decrypting.
type Cipher interface {
	Direction() cask.Direction
}

// NonAEAD is a cipher context with no authentication. Update and UpdateInto
// pass bytes through the underlying transform unchanged in order; Finalize
// releases the transform and refuses a second call with
// cask.ErrAlreadyFinalized.
//
// Callers who need integrity (almost everyone) wrap a NonAEAD in the HMAC
// composition layer instead of using it directly.
type NonAEAD interface {
	Cipher

	// Update transforms data and returns the result.
	Update(data []byte) ([]byte, error)

	// UpdateInto transforms data into the preallocated buffer out, which
	// must be at least len(data) bytes. out may alias data for an in-place
	// transform.
	UpdateInto(data, out []byte) error

	// Finalize closes the context and releases the transform.
	Finalize() error
}

// AEAD is a cipher context with authentication, either synthesized over a
// NonAEAD via HMAC or forwarded to a natively authenticated primitive. Both
// paths expose exactly this contract so callers cannot observe which one is
// active.
//
// The lifecycle rules are uniform across implementations:
//
//   - Authenticate is legal only before the first Update/UpdateInto call;
//     afterwards it fails with cask.ErrAuthAfterUpdate.
//   - Finalize on a decrypting context requires the tag and fails with
//     cask.ErrDecryption when verification fails. On an encrypting context
//     the tag argument is ignored.
//   - A second Finalize fails with cask.ErrAlreadyFinalized.
//   - Tag is only available after Finalize (cask.ErrNotFinalized before)
//     and returns nil for decrypting contexts, whose tag was consumed as
//     input rather than produced.
type AEAD interface {
	Cipher

	Update(data []byte) ([]byte, error)
	UpdateInto(data, out []byte) error

	// Authenticate feeds associated data into the authenticator only. The
	// data is authenticated as a logically distinct prefix of the message
	// and never passes through the cipher.
	Authenticate(data []byte) error

	// Finalize closes the context. tag is required when decrypting and
	// ignored when encrypting.
	Finalize(tag []byte) error

	// Tag returns the authentication tag produced by an encrypting context.
	Tag() ([]byte, error)
}
