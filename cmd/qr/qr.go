// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr writes a version 1-H QR code holding a short alphanumeric string.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-logr/stdr"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/width"

	"github.com/unixdj/qrv1"
	"github.com/unixdj/qrv1/coding"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	format  int             // output file format
	debug   int             // trace verbosity
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	upper   bool            // uppercase
	fold    bool            // fold full-width characters
}{
	scale:  qr.DefaultScale,
	border: qr.DefaultBorder,
	bg:     rgba{0xff, 0xff, 0xff, 0xff},
	fg:     rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator, version 1-H, alphanumeric mode\n",
		"Usage: ", cl.Program(), " ", cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Text may hold up to `, coding.MaxChars,
		` characters of 0-9, A-Z, space and $%*+-./:

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	return c.parse(s)
}

// parse sets c from 3, 4, 6 or 8 hex digits.
func (c *rgba) parse(s string) error {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	func(c *qr.Code, w io.Writer) error {
		return c.EncodeText(w, '#', ' ')
	},
}

// setFormat sets g.format and g.rev from a format name.
func setFormat(f string) bool {
	for i, v := range formats {
		if f == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			return true
		}
	}
	return false
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits; only for types png[i]`, "RGB[A]")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.fold, 'w', `fold full-width characters `+
		`such as "ＡＢＣ１２３" to ASCII`)
	getopt.Flag(&g.border, 'm', `quiet zone modules [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	cfn := getopt.StringLong("config", 'c', os.Getenv(configEnv),
		"TOML file with defaults; flags take precedence [$"+configEnv+"]",
		"file")
	debug := getopt.Counter('d', "trace encoding stages to standard "+
		"error; repeat for more detail")
	scale := getopt.Unsigned('s', qr.DefaultScale,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels per QR module; ignored for types utf8[i] `+
			`and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.debug = *debug
	if g.fn == "-" {
		g.fn = ""
	}
	if *cfn != "" {
		cfg, err := loadConfig(*cfn)
		if err != nil {
			log.Fatalln(err)
		}
		isSet := func(r rune) bool { return getopt.IsSet(r) }
		if err := cfg.apply(ff, isSet); err != nil {
			log.Fatalln(err)
		}
	}
	if err := checkMargin(g.border); err != nil {
		log.Fatalln(err)
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	setFormat(*ff)
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

// checkMargin rejects a quiet zone the renderers cannot draw.
func checkMargin(m int) error {
	if m < 0 {
		return fmt.Errorf("negative margin %d", m)
	}
	return nil
}

// input returns the text to encode from the arguments or standard
// input, folded as requested.
func input(args []string, r io.Reader) (string, error) {
	var s string
	if len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, r); err != nil {
			return "", err
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.fold {
		s = width.Fold.String(s)
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	return s, nil
}

func main() {
	log.SetFlags(0)
	parseFlags()

	s, err := input(getopt.Args(), os.Stdin)
	if err != nil {
		log.Fatalln(err)
	}
	stdr.SetVerbosity(g.debug)
	enc := coding.Encoder{Logger: stdr.New(log.Default()).WithName("qr")}
	m, err := enc.Encode(s)
	if err != nil {
		log.Fatalln(err)
	}
	write(qr.FromMatrix(m))
}

func write(c *qr.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
