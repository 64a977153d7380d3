package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/skyhook/tether"
	"github.com/signalsfoundry/skyhook/unit"
)

var orbitCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Circular orbit kinematics around a catalog body",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		body, err := bodyFromFlags(cmd, cat)
		if err != nil {
			return err
		}
		altitudeKm, _ := cmd.Flags().GetFloat64("altitude-km")

		radius := body.Radius.Add(unit.NewKilometers(altitudeKm)).Meters()
		mu := body.Mu()

		velocity, err := tether.OrbitalVelocity(radius, mu)
		if err != nil {
			return err
		}
		period, err := tether.OrbitalPeriod(radius, mu)
		if err != nil {
			return err
		}
		omega, err := tether.AngularVelocity(radius, mu)
		if err != nil {
			return err
		}

		fmt.Printf("Circular orbit around %s at %.1f km altitude:\n", body.Name, altitudeKm)
		fmt.Printf("  orbital radius:    %.1f km\n", radius.Kilometers().Value())
		fmt.Printf("  orbital velocity:  %.2f m/s\n", velocity.Value())
		fmt.Printf("  orbital period:    %.1f s (%.2f h)\n", period.Value(), period.Value()/3600)
		fmt.Printf("  angular velocity:  %.6e rad/s\n", omega.Value())
		return nil
	},
}

func init() {
	orbitCmd.Flags().String("body", "Earth", "central body name")
	orbitCmd.Flags().Float64("altitude-km", 400, "orbit altitude above the surface")
	rootCmd.AddCommand(orbitCmd)
}
