package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/skyhook/tether"
	"github.com/signalsfoundry/skyhook/unit"
)

var tetherCmd = &cobra.Command{
	Use:   "tether",
	Short: "Tether performance for a material on a circular orbit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		m, err := materialFromFlags(cmd, cat)
		if err != nil {
			return err
		}
		body, err := bodyFromFlags(cmd, cat)
		if err != nil {
			return err
		}
		altitudeKm, _ := cmd.Flags().GetFloat64("altitude-km")
		lengthKm, _ := cmd.Flags().GetFloat64("length-km")

		radius := body.Radius.Add(unit.NewKilometers(altitudeKm)).Meters()
		mu := body.Mu()

		charVel, err := tether.CharacteristicVelocityForMaterial(m)
		if err != nil {
			return err
		}
		efficiency, err := tether.Efficiency(m, radius, mu)
		if err != nil {
			return err
		}
		spinRate, err := tether.SpinRate(
			unit.NewKilometers(lengthKm).Meters(),
			body.Radius.Meters(),
		)
		if err != nil {
			return err
		}

		fmt.Printf("%s tether around %s at %.1f km altitude:\n", m.Name, body.Name, altitudeKm)
		fmt.Printf("  characteristic velocity:  %.2f m/s\n", charVel.Value())
		fmt.Printf("  momentum-exchange efficiency:  %.3f\n", efficiency)
		fmt.Printf("  spin rate (x orbital angular velocity):  %.2f\n", spinRate)
		return nil
	},
}

func init() {
	tetherCmd.Flags().String("material", "", "catalog material name")
	tetherCmd.Flags().String("body", "Earth", "central body name")
	tetherCmd.Flags().Float64("altitude-km", 400, "orbit altitude above the surface")
	tetherCmd.Flags().Float64("length-km", 100, "tether tip-to-tip length")
	rootCmd.AddCommand(tetherCmd)
}
