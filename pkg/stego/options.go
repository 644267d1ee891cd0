package stego

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

type options struct {
	passphrase string
	version    byte
	suite      CipherSuite
	progress   io.Writer
}

// Option configures Encrypt, Decrypt, GetInfo and Verify.
type Option func(*options)

// WithPassphrase masks the header and payload. An empty passphrase leaves
// both in the clear.
func WithPassphrase(passphrase string) Option {
	return func(o *options) {
		o.passphrase = passphrase
	}
}

// WithVersion selects the header version Encrypt writes. Decrypt follows
// whatever version it finds in the image.
func WithVersion(version byte) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithCipherSuite replaces DefaultCipherSuite.
func WithCipherSuite(suite CipherSuite) Option {
	return func(o *options) {
		o.suite = suite
	}
}

// WithProgress renders a progress bar on w while bytes are embedded or
// extracted.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		version: CurrentVersion,
		suite:   DefaultCipherSuite(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if o.progress == nil {
		return progressbar.NewOptions(total, progressbar.OptionSetWriter(io.Discard))
	}
	return progressbar.NewOptions(
		total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(o.progress),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			io.WriteString(o.progress, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}
