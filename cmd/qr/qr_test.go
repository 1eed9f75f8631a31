// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRGBA(t *testing.T) {
	for _, tt := range []struct {
		in  string
		out rgba
		s   string
	}{
		{"036", rgba{0x00, 0x33, 0x66, 0xff}, "003366"},
		{"0368", rgba{0x00, 0x33, 0x66, 0x88}, "00336688"},
		{"123456", rgba{0x12, 0x34, 0x56, 0xff}, "123456"},
		{"12345678", rgba{0x12, 0x34, 0x56, 0x78}, "12345678"},
		{"FFfFfF", rgba{0xff, 0xff, 0xff, 0xff}, "ffffff"},
	} {
		var c rgba
		if err := c.parse(tt.in); err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if c != tt.out {
			t.Errorf("%q: got %v, want %v", tt.in, c, tt.out)
		}
		if s := c.String(); s != tt.s {
			t.Errorf("%q: String() = %q, want %q", tt.in, s, tt.s)
		}
	}
	for _, s := range []string{"", "12", "12345", "1234567", "123456789", "xyz", "-12", "+123"} {
		var c rgba
		if err := c.parse(s); err == nil {
			t.Errorf("%q: no error, got %v", s, c)
		}
	}
}

func TestSetFormat(t *testing.T) {
	defer func(f int, r bool) { g.format, g.rev = f, r }(g.format, g.rev)
	for i, f := range formats {
		if !setFormat(f) {
			t.Errorf("%s: not found", f)
		}
		// Odd entries are the inverted variants; "ascii" is not one.
		if g.format != i/2 || g.rev != (i&1 != 0) {
			t.Errorf("%s: format %d reverse %v", f, g.format, g.rev)
		}
	}
	if len(encoders) != len(formats)/2 {
		t.Errorf("%d encoders for %d formats", len(encoders), len(formats))
	}
	if setFormat("eps") {
		t.Error("eps found")
	}
}

func TestInput(t *testing.T) {
	defer func(u, f bool) { g.upper, g.fold = u, f }(g.upper, g.fold)
	for _, tt := range []struct {
		args        []string
		in          string
		upper, fold bool
		want        string
	}{
		{[]string{"HELLO", "2"}, "ignored", false, false, "HELLO 2"},
		{nil, "ABC\n", false, false, "ABC"},
		{nil, "ABC\r\n", false, false, "ABC"},
		{nil, "ABC\n\n", false, false, "ABC\n"},
		{nil, "abc", true, false, "ABC"},
		{[]string{"ＡＢＣ１２３"}, "", false, true, "ABC123"},
		{[]string{"ｈｅｌｌｏ　２"}, "", true, true, "HELLO 2"},
		{[]string{"ｈｅｌｌｏ"}, "", false, false, "ｈｅｌｌｏ"},
	} {
		g.upper, g.fold = tt.upper, tt.fold
		got, err := input(tt.args, strings.NewReader(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%q %q: got %q, want %q", tt.args, tt.in, got, tt.want)
		}
	}
}

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "qr.toml")
	if err := os.WriteFile(fn, []byte(s), 0666); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadConfig(t *testing.T) {
	fn := writeConfig(t, `
scale = 2
margin = 0
format = "utf8i"
foreground = "036"
background = "ffffff80"
upper = true
fold_width = true
`)
	c, err := loadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	scale, margin := uint(2), 0
	want := &config{
		Scale:      &scale,
		Margin:     &margin,
		Format:     "utf8i",
		Foreground: "036",
		Background: "ffffff80",
		Upper:      true,
		FoldWidth:  true,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, s := range []string{
		`colour = "red"`,
		`scale = 0`,
		`margin = -1`,
		`format = "eps"`,
		`foreground = "black"`,
		`background = "12345"`,
		`scale = "big"`,
		`upper = `,
	} {
		if _, err := loadConfig(writeConfig(t, s)); err == nil {
			t.Errorf("%q: no error", s)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Error("missing file: no error")
	}
}

func TestConfigApply(t *testing.T) {
	saved := g
	defer func() { g = saved }()

	scale, margin := uint(3), 1
	c := &config{
		Scale:      &scale,
		Margin:     &margin,
		Format:     "ascii",
		Foreground: "00f",
		Upper:      true,
	}
	var seen []rune
	unset := func(r rune) bool {
		seen = append(seen, r)
		return false
	}
	ff := ""
	if err := c.apply(&ff, unset); err != nil {
		t.Fatal(err)
	}
	if g.scale != 3 || g.border != 1 || ff != "ascii" {
		t.Errorf("scale %d border %d format %q", g.scale, g.border, ff)
	}
	if want := (rgba{0, 0, 0xff, 0xff}); g.fg != want || !g.colSet {
		t.Errorf("foreground %v set %v", g.fg, g.colSet)
	}
	if want := saved.bg; g.bg != want {
		t.Errorf("background %v, want %v", g.bg, want)
	}
	if !g.upper || g.fold != saved.fold {
		t.Errorf("upper %v fold %v", g.upper, g.fold)
	}

	if diff := cmp.Diff([]rune{'s', 'm', 'F'}, seen); diff != "" {
		t.Errorf("flags queried (-want +got):\n%s", diff)
	}

	// Values given on the command line win.
	g = saved
	ff = "pbm"
	set := func(r rune) bool { return r == 's' || r == 'F' }
	if err := c.apply(&ff, set); err != nil || ff != "pbm" {
		t.Errorf("format %q, err %v", ff, err)
	}
	if g.scale != saved.scale || g.border != 1 || g.fg != saved.fg || g.colSet {
		t.Errorf("scale %d border %d foreground %v set %v",
			g.scale, g.border, g.fg, g.colSet)
	}
}

func TestCheckMargin(t *testing.T) {
	for _, m := range []int{0, 4, 100} {
		if err := checkMargin(m); err != nil {
			t.Errorf("%d: %v", m, err)
		}
	}
	if err := checkMargin(-1); err == nil {
		t.Error("-1: no error")
	}
	// The configuration file goes through the same check.
	scale, margin := uint(1), -2
	if err := (&config{Scale: &scale, Margin: &margin}).check(); err == nil ||
		!strings.Contains(err.Error(), "negative margin -2") {
		t.Errorf("config: %v", err)
	}
}
