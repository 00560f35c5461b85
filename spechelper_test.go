package iterkit_test

import (
	"errors"
	"io"

	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

type Entity struct {
	Text string
}

type ReadCloser struct {
	IsClosed bool
	io       io.Reader
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{io: r, IsClosed: false}
}

func (rc *ReadCloser) Read(p []byte) (n int, err error) {
	return rc.io.Read(p)
}

func (rc *ReadCloser) Close() error {
	if rc.IsClosed {
		return errors.New("already closed")
	}
	rc.IsClosed = true
	return nil
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }
