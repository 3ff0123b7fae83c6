package symmetric

import (
	"context"
	"io"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/logging"
)

// FileCipher drives an AEAD context against a byte source in fixed-size
// chunks. It only sees the AEAD contract, so it works identically over the
// composed and native paths, and performs the terminal tag production or
// check through Finalize.
//
// The driver itself allocates nothing per chunk, but total memory depends on
// the wrapped context: composed contexts stay flat regardless of source
// size, while NativeAEAD retains its input transcript until finalize.
type FileCipher struct {
	ctx AEAD
	src io.Reader
	log logging.Logger

	finalized bool
	tag       []byte
}

// FileOption customizes a FileCipher.
type FileOption func(*FileCipher)

// WithLogger attaches a logger. Only chunk counts and byte totals are ever
// logged; payload, key and tag material never reach a log line.
func WithLogger(l logging.Logger) FileOption {
	return func(f *FileCipher) { f.log = l }
}

// NewFile wraps an AEAD context and a source for streaming operation.
func NewFile(ctx AEAD, src io.Reader, opts ...FileOption) (*FileCipher, error) {
	if ctx == nil {
		return nil, cask.Errorf("symmetric.NewFile", "nil cipher context")
	}
	if src == nil {
		return nil, cask.Errorf("symmetric.NewFile", "nil source")
	}
	f := &FileCipher{ctx: ctx, src: src}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Direction returns the direction of the wrapped context.
func (f *FileCipher) Direction() cask.Direction {
	return f.ctx.Direction()
}

// Authenticate forwards associated data to the wrapped context. As there, it
// must precede any payload processing.
func (f *FileCipher) Authenticate(data []byte) error {
	if f.finalized {
		return cask.ErrAlreadyFinalized
	}
	return f.ctx.Authenticate(data)
}

// Update reads at most blocksize bytes from the source, passes them through
// the cipher and returns the output. It returns io.EOF once the source is
// exhausted; the caller is then expected to call Finalize.
func (f *FileCipher) Update(blocksize int) ([]byte, error) {
	if f.finalized {
		return nil, cask.ErrAlreadyFinalized
	}
	if blocksize <= 0 {
		return nil, cask.Errorf("symmetric.Update", "blocksize must be positive, got %d", blocksize)
	}
	buf := make([]byte, blocksize)
	n, err := f.src.Read(buf)
	if n > 0 {
		return f.ctx.Update(buf[:n])
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// Drive pumps the whole source through the cipher into dst, reusing buf for
// every chunk. Short reads are truncated to the bytes actually read; the
// transform runs in place and output length equals input length. When the
// source is exhausted the context is finalized with tag, which is where any
// verification failure surfaces: the tag is only checkable once all
// ciphertext has been seen.
//
// With a composed context memory stays bounded regardless of source size.
// The native adapter retains the payload until finalize; see NativeAEAD.
func (f *FileCipher) Drive(dst io.Writer, buf []byte, tag []byte) error {
	if f.finalized {
		return cask.ErrAlreadyFinalized
	}
	if dst == nil {
		return cask.Errorf("symmetric.Drive", "nil sink")
	}
	if len(buf) == 0 {
		return cask.Errorf("symmetric.Drive", "empty chunk buffer")
	}
	if !f.ctx.Direction().IsEncrypting() && tag == nil {
		return cask.ErrTagRequired
	}

	var chunks, total int
	for {
		n, err := f.src.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if uerr := f.ctx.UpdateInto(chunk, chunk); uerr != nil {
				return uerr
			}
			if _, werr := dst.Write(chunk); werr != nil {
				return cask.Errorf("symmetric.Drive", "write sink: %w", werr)
			}
			chunks++
			total += n
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return cask.Errorf("symmetric.Drive", "read source: %w", err)
		}
	}

	if f.log != nil {
		f.log.Debug(context.Background(), "stream complete",
			"direction", f.ctx.Direction().String(),
			"chunks", chunks,
			"bytes", total,
			logging.Redacted("tag"))
	}
	return f.Finalize(tag)
}

// Finalize closes the wrapped context and captures its tag for Tag. Even when
// verification fails the wrapper becomes terminal.
func (f *FileCipher) Finalize(tag []byte) error {
	if f.finalized {
		return cask.ErrAlreadyFinalized
	}
	err := f.ctx.Finalize(tag)
	f.finalized = true
	if t, terr := f.ctx.Tag(); terr == nil {
		f.tag = t
	}
	return err
}

// Tag returns the tag captured at finalize. Before finalize it fails with
// cask.ErrNotFinalized.
func (f *FileCipher) Tag() ([]byte, error) {
	if !f.finalized {
		return nil, cask.ErrNotFinalized
	}
	return f.tag, nil
}
