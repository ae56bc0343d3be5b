package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/veramc/veramc/convert"
	"github.com/veramc/veramc/vera"
)

func runBuild(cmd *cobra.Command, args []string) error {
	settings := DefaultSettings()
	if settingsPath != "" {
		var err error
		settings, err = LoadSettings(settingsPath)
		if err != nil {
			return err
		}
	}

	deck, err := vera.Load(args[0])
	if err != nil {
		return err
	}
	slog.Info("deck parsed", "case", deck.ID,
		"materials", len(deck.Materials), "assemblies", len(deck.Assemblies))

	session, err := convert.New(deck,
		convert.WithDigits(settings.Geometry.Digits),
		convert.WithFloor(settings.Geometry.IDFloor))
	if err != nil {
		return err
	}
	model, err := session.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "case %s\n", deck.ID)
	fmt.Fprintf(out, "  materials:  %d\n", len(session.Materials()))
	fmt.Fprintf(out, "  surfaces:   %d\n", session.Registry().NumSurfaces())
	fmt.Fprintf(out, "  root cells: %d\n", model.Root.NumCells())
	fmt.Fprintf(out, "  bounds:     radial %s, bottom %s, top %s\n",
		model.RadialBound.Boundary(), model.BottomBound.Boundary(), model.TopBound.Boundary())
	fmt.Fprintf(out, "  run:        %d particles, %d batches (%d inactive)\n",
		settings.Run.Particles, settings.Run.Batches, settings.Run.Inactive)
	if n := session.Warnings(); n > 0 {
		fmt.Fprintf(out, "  warnings:   %d\n", n)
	}

	return nil
}
