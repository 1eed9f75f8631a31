// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/unixdj/qrv1/coding"
)

func encode(t *testing.T, text string) (*coding.Matrix, *Code) {
	t.Helper()
	m, err := coding.Encode(text)
	if err != nil {
		t.Fatal(err)
	}
	return m, FromMatrix(m)
}

func TestFromMatrix(t *testing.T) {
	m, c := encode(t, "ABCDE123")
	if c.Size != coding.Size || c.Stride != 3 || len(c.Bitmap) != 63 {
		t.Fatalf("size %d stride %d bitmap %d", c.Size, c.Stride, len(c.Bitmap))
	}
	if c.Scale != DefaultScale || c.Border != DefaultBorder {
		t.Errorf("scale %d border %d", c.Scale, c.Border)
	}
	for y := -1; y <= c.Size; y++ {
		for x := -1; x <= c.Size; x++ {
			if got, want := c.Black(x, y), m.Dark(y, x); got != want {
				t.Errorf("Black(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncode(t *testing.T) {
	c, err := Encode("HELLO 2")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := coding.Encode("HELLO 2")
	if diff := cmp.Diff(FromMatrix(m), c); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for _, s := range []string{"hello", "ABCDEFGHIJK"} {
		if c, err := Encode(s); c != nil || err == nil {
			t.Errorf("%q: %v, %v", s, c, err)
		}
	}
}

func TestEncodePBM(t *testing.T) {
	_, c := encode(t, "ABCDE123")
	for _, rev := range []bool{false, true} {
		c.Reverse = rev
		var b bytes.Buffer
		if err := c.EncodePBM(&b); err != nil {
			t.Fatal(err)
		}
		const hdr = "P4\n232 232\n"
		if !strings.HasPrefix(b.String(), hdr) {
			t.Fatalf("header %q", b.String()[:len(hdr)])
		}
		pix := b.Bytes()[len(hdr):]
		const stride = 232 / 8
		if len(pix) != 232*stride {
			t.Fatalf("%d bytes of pixels, want %d", len(pix), 232*stride)
		}
		for y := 0; y < 232; y++ {
			for x := 0; x < 232; x++ {
				got := pix[y*stride+x/8]&(0x80>>(x%8)) != 0
				want := c.Black(x/8-4, y/8-4) != rev
				if got != want {
					t.Fatalf("reverse %v: pixel (%d, %d) = %v, want %v",
						rev, x, y, got, want)
				}
			}
		}
	}
}

func TestEncodePNG(t *testing.T) {
	_, c := encode(t, "ABCDE123")
	c.Scale = 2
	c.Border = 1
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	c.Palette = &[2]color.Color{red, blue}
	img, err := png.Decode(bytes.NewReader(c.PNG()))
	if err != nil {
		t.Fatal(err)
	}
	if d := img.Bounds().Dx(); d != 46 || img.Bounds().Dy() != 46 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	for y := 0; y < 46; y++ {
		for x := 0; x < 46; x++ {
			want := red
			if c.Black(x/2-1, y/2-1) {
				want = blue
			}
			if got := color.RGBAModel.Convert(img.At(x, y)); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImage(t *testing.T) {
	_, c := encode(t, "A")
	c.Reverse = true
	img := c.Image()
	if b := img.Bounds(); b.Dx() != 232 {
		t.Fatalf("bounds %v", b)
	}
	// Reversed: the quiet zone is black, the finder corner white.
	if got := color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y; got != 0 {
		t.Errorf("quiet zone = %d", got)
	}
	if got := color.GrayModel.Convert(img.At(32, 32)).(color.Gray).Y; got != 0xff {
		t.Errorf("finder = %d", got)
	}
	if p := c.Paletted(); p.Pix[0] != 0 || p.Pix[32*p.Stride+32] != 1 {
		t.Error("paletted indices wrong")
	}
}

// double repeats each byte of s except newlines.
func double(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] != '\n' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func TestEncodeText(t *testing.T) {
	m, c := encode(t, "HELLO 2")
	c.Border = 0
	var b bytes.Buffer
	if err := c.EncodeText(&b, '#', '.'); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(double(m.String()), b.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	c.Border = 1
	c.Reverse = true
	b.Reset()
	if err := c.EncodeText(&b, '#', '.'); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	if len(lines) != 24 || lines[23] != "" {
		t.Fatalf("%d lines", len(lines))
	}
	if want := strings.Repeat("#", 46); lines[0] != want {
		t.Errorf("first line %q, want %q", lines[0], want)
	}
	if want := "##" + strings.Repeat(".", 14) + "##"; !strings.HasPrefix(lines[1], want) {
		t.Errorf("second line %q, want prefix %q", lines[1], want)
	}
}

func TestString(t *testing.T) {
	_, c := encode(t, "ABCDE123")
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	// 29 rows of modules, two per line.
	if len(lines) != 15 {
		t.Fatalf("%d lines", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 29 {
			t.Errorf("line %d: %d characters", i, n)
		}
	}
	if want := strings.Repeat("█", 29); lines[0] != want {
		t.Errorf("first line %q", lines[0])
	}
	// Rows 0 and 1 of the top left finder at x = 0.
	if r, _ := utf8.DecodeRuneInString(lines[2][len("████"):]); r != ' ' {
		t.Errorf("finder corner %q", r)
	}
	c.Reverse = true
	if want := strings.Repeat(" ", 29); !strings.HasPrefix(c.String(), want+"\n") {
		t.Errorf("reversed first line %q", strings.SplitN(c.String(), "\n", 2)[0])
	}
}

func TestInvalidCode(t *testing.T) {
	_, good := encode(t, "A")
	for _, c := range []*Code{
		{},
		{Bitmap: good.Bitmap, Size: 21, Stride: 3, Scale: 0},
		{Bitmap: good.Bitmap, Size: 21, Stride: 2, Scale: 1},
		{Bitmap: good.Bitmap[:60], Size: 21, Stride: 3, Scale: 1},
		{Bitmap: good.Bitmap, Size: 21, Stride: 3, Scale: 1, Border: -1},
	} {
		var b bytes.Buffer
		if err := c.EncodePBM(&b); !errors.Is(err, ErrArgs) {
			t.Errorf("EncodePBM: %v", err)
		}
		if err := c.EncodePNG(&b); !errors.Is(err, ErrArgs) {
			t.Errorf("EncodePNG: %v", err)
		}
		if err := c.EncodeText(&b, '#', ' '); !errors.Is(err, ErrArgs) {
			t.Errorf("EncodeText: %v", err)
		}
		if c.PNG() != nil {
			t.Error("PNG returned data")
		}
	}
}

func ExampleCode_EncodeText() {
	c, err := Encode("A")
	if err != nil {
		fmt.Println(err)
		return
	}
	c.Border = 1
	var b bytes.Buffer
	c.EncodeText(&b, '#', '.')
	fmt.Print(strings.Join(strings.SplitAfter(b.String(), "\n")[:4], ""))
	// Output:
	// ..............................................
	// ..##############....######....##############..
	// ..##..........##........##....##..........##..
	// ..##..######..##....####..##..##..######..##..
}
