// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// configEnv names the environment variable holding the default
// configuration file.
const configEnv = "QRV1_CONFIG"

// config holds defaults read from a TOML file:
//
//	scale = 4
//	margin = 2
//	format = "utf8i"
//	foreground = "036"
//	background = "fff"
//	upper = true
//	fold_width = true
type config struct {
	Scale      *uint  `toml:"scale"`
	Margin     *int   `toml:"margin"`
	Format     string `toml:"format"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Upper      bool   `toml:"upper"`
	FoldWidth  bool   `toml:"fold_width"`
}

// loadConfig reads the configuration file fn.  Unknown keys are
// errors.
func loadConfig(fn string) (*config, error) {
	var c config
	md, err := toml.DecodeFile(fn, &c)
	if err != nil {
		return nil, err
	}
	if u := md.Undecoded(); len(u) != 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", fn,
			strings.Join(keys, ", "))
	}
	return &c, c.check()
}

// check validates values that flags would have rejected.
func (c *config) check() error {
	if c.Scale != nil && (*c.Scale == 0 || *c.Scale > 1<<28) {
		return fmt.Errorf("config: scale %d out of range", *c.Scale)
	}
	if c.Margin != nil {
		if err := checkMargin(*c.Margin); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Format != "" {
		ok := false
		for _, v := range formats {
			ok = ok || v == c.Format
		}
		if !ok {
			return fmt.Errorf("config: unknown format %q", c.Format)
		}
	}
	var col rgba
	for _, s := range []string{c.Foreground, c.Background} {
		if s != "" {
			if err := col.parse(s); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		}
	}
	return nil
}

// apply sets options not given on the command line.  ff points to
// the value of the output format flag; isSet reports whether a flag
// was given.
func (c *config) apply(ff *string, isSet func(rune) bool) error {
	if c.Scale != nil && !isSet('s') {
		g.scale = int(*c.Scale)
	}
	if c.Margin != nil && !isSet('m') {
		g.border = *c.Margin
	}
	if c.Format != "" && *ff == "" {
		*ff = c.Format
	}
	if c.Foreground != "" && !isSet('F') {
		if err := g.fg.parse(c.Foreground); err != nil {
			return err
		}
		g.colSet = true
	}
	if c.Background != "" && !isSet('B') {
		if err := g.bg.parse(c.Background); err != nil {
			return err
		}
		g.colSet = true
	}
	g.upper = g.upper || c.Upper
	g.fold = g.fold || c.FoldWidth
	return nil
}
