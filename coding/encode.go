// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/unixdj/qrv1/gf256"
)

// A Corrector appends n error correction codewords to data.  The
// returned slice holds data unchanged followed by the check codewords.
type Corrector interface {
	Append(data []byte, n int) ([]byte, error)
}

// ReedSolomon is a Corrector computing QR Reed-Solomon codes over
// Field.
type ReedSolomon struct{}

// Pre-allocated encoders.  An encoder is created the first time a
// number of check bytes is used.
var rsEncoders [255]struct {
	once sync.Once
	rs   *gf256.RSEncoder
}

// Append implements Corrector.
func (ReedSolomon) Append(data []byte, n int) ([]byte, error) {
	if n < 0 || n >= len(rsEncoders) {
		return nil, fmt.Errorf("qr: invalid check codeword count %d", n)
	}
	if len(data)+n > 255 {
		return nil, gf256.ErrBlockLength
	}
	e := &rsEncoders[n]
	e.once.Do(func() { e.rs = gf256.NewRSEncoder(Field, n) })
	return e.rs.Append(data)
}

// Encoder encodes text into a symbol matrix.  The zero value uses
// ReedSolomon and logs nothing.  An Encoder may be used concurrently.
type Encoder struct {
	Corrector Corrector   // error correction; nil means ReedSolomon
	Logger    logr.Logger // V(1) traces each stage
}

func (e *Encoder) corrector() Corrector {
	if e.Corrector == nil {
		return ReedSolomon{}
	}
	return e.Corrector
}

func (e *Encoder) logger() logr.Logger {
	if e.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return e.Logger
}

// Encode returns the symbol for text, a string of at most MaxChars
// alphanumeric characters.  Errors from the Corrector are returned
// unchanged.
func (e *Encoder) Encode(text string) (*Matrix, error) {
	log := e.logger().V(1)

	b, err := Header(text)
	if err != nil {
		return nil, err
	}
	log.Info("segment", "text", text, "bits", b.String())
	b.PadTo(TermBits, DataBits)
	data := b.Bytes()
	log.Info("data codewords", "codewords", data)

	cw, err := e.corrector().Append(data, CheckCodewords)
	if err != nil {
		return nil, err
	}
	log.Info("check codewords", "codewords", cw[min(len(data), len(cw)):])

	m := Template()
	if err := m.Place(NewBitStream(cw)); err != nil {
		return nil, err
	}
	m.Mask(Mask3)
	fi := FormatInfo(H, Mask3)
	m.EmbedFormat(fi)
	a, c := m.Format()
	log.Info("format information", "level", H, "mask", Mask3,
		"bits", fmt.Sprintf("%015b", fi),
		"copy1", fmt.Sprintf("%015b", a), "copy2", fmt.Sprintf("%015b", c))
	return &m, nil
}

// Encode encodes text using a zero Encoder.
func Encode(text string) (*Matrix, error) {
	return new(Encoder).Encode(text)
}
