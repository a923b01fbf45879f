// Package config holds coldist's optional settings.
//
// None of the settings is needed: the zero Config gives the plain report.
// Settings may come from an ini file with a [coldist] section:
//
//	[coldist]
//	verbose = true
//	rows = false
//	group = false
//	profile = coldist.prof
package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const section = "coldist"

// Config is the set of coldist settings.
type Config struct {
	Verbose     bool   // log diagnostics to stderr
	ShowRows    bool   // list each row in the reports
	GroupDigits bool   // print sums with thousands separators
	Profile     string // write an fgprof profile to this file
}

// LoadFile reads the named ini file into c.
func (c *Config) LoadFile(name string) error {
	f, err := ini.LoadFile(name)
	if err != nil {
		return fmt.Errorf("error loading config (%s): %w", name, err)
	}
	if err := c.apply(f); err != nil {
		return fmt.Errorf("bad config (%s): %s", name, err)
	}
	return nil
}

// Load reads ini-formatted settings from r into c.
func (c *Config) Load(r io.Reader) error {
	f, err := ini.Load(r)
	if err != nil {
		return err
	}
	return c.apply(f)
}

func (c *Config) apply(f ini.File) error {
	for _, b := range []struct {
		key string
		v   *bool
	}{
		{"verbose", &c.Verbose},
		{"rows", &c.ShowRows},
		{"group", &c.GroupDigits},
	} {
		s, ok := f.Get(section, b.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean", b.key, s)
		}
		*b.v = v
	}
	if s, ok := f.Get(section, "profile"); ok {
		c.Profile = s
	}
	return nil
}
