package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/skyhook/tether"
	"github.com/signalsfoundry/skyhook/unit"
)

var impulseCmd = &cobra.Command{
	Use:   "impulse",
	Short: "Estimate the delta-v a rotating tether imparts to a released payload",
	Long: "Estimates the boost a payload gets when released from the upper tip of\n" +
		"a rotating tether. The estimate uses a simplified mass-ratio argument and\n" +
		"is meant for sizing studies, not mission design.",
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
		massKg, _ := cmd.Flags().GetFloat64("mass-kg")
		tipSpeed, _ := cmd.Flags().GetFloat64("tip-speed-m-s")
		payloadKg, _ := cmd.Flags().GetFloat64("payload-kg")

		t := tether.Tether{
			Altitude:           unit.NewKilometers(altitudeKm),
			Length:             unit.NewKilometers(lengthKm),
			Mass:               unit.NewKilograms(massKg),
			Material:           m,
			RotationalVelocity: unit.NewMetersPerSecond(tipSpeed),
		}
		p := tether.Payload{Mass: unit.NewKilograms(payloadKg)}

		fmt.Printf("%s tether (%.0f kg, %.1f km) around %s at %.1f km altitude:\n",
			m.Name, massKg, lengthKm, body.Name, altitudeKm)
		fmt.Printf("  payload impulse:         %.2f m/s (%.0f kg payload)\n",
			t.PayloadImpulse(p, body).Value(), payloadKg)
		fmt.Printf("  tether/load mass ratio:  %.4f\n", t.MassRatio(body))
		fmt.Printf("  characteristic length:   %.1f km\n", t.CharacteristicLength(body).Value())
		return nil
	},
}

func init() {
	impulseCmd.Flags().String("material", "", "catalog material name")
	impulseCmd.Flags().String("body", "Moon", "central body name")
	impulseCmd.Flags().Float64("altitude-km", 200, "altitude of the tether centre")
	impulseCmd.Flags().Float64("length-km", 100, "tether tip-to-tip length")
	impulseCmd.Flags().Float64("mass-kg", 5000, "tether mass")
	impulseCmd.Flags().Float64("tip-speed-m-s", 500, "rotational tip speed")
	impulseCmd.Flags().Float64("payload-kg", 1000, "payload mass")
	rootCmd.AddCommand(impulseCmd)
}
