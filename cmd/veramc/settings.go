package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/gcfg.v1"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
)

// ExampleSettingsFile documents every recognized key with its default.
const ExampleSettingsFile = `[Geometry]

# Decimal digits kept when deduplicating surface coefficients.
Digits = 5

# First id issued in each of the surface/cell/universe/material
# namespaces, leaving room below for hand-numbered additions.
IDFloor = 100

[Run]

# Passed through to the downstream transport engine unchanged.
Particles = 10000
Batches = 100
Inactive = 20`

// Settings are the tunables read from the optional INI file. Geometry
// settings feed the conversion session; Run settings are passed through
// to the transport engine untouched.
type Settings struct {
	Geometry struct {
		Digits  int
		IDFloor int
	}
	Run struct {
		Particles int
		Batches   int
		Inactive  int
	}
}

// DefaultSettings mirrors ExampleSettingsFile.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.Geometry.Digits = csg.DefaultDigits
	s.Geometry.IDFloor = ident.DefaultFloor
	s.Run.Particles = 10000
	s.Run.Batches = 100
	s.Run.Inactive = 20

	return s
}

// LoadSettings reads the INI file over the defaults, so a partial file
// only overrides what it names.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if err := gcfg.ReadFileInto(s, path); err != nil {
		return nil, fmt.Errorf("settings %q: %w", path, err)
	}
	if s.Geometry.Digits < 0 || s.Geometry.IDFloor < 0 {
		return nil, fmt.Errorf("settings %q: digits and id floor must be non-negative", path)
	}

	return s, nil
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print an example settings file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ExampleSettingsFile)

		return err
	},
}
