package main

import (
	"fmt"
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/spf13/cobra"

	"github.com/signalsfoundry/skyhook/tether"
	"github.com/signalsfoundry/skyhook/unit"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Propagate a TLE and report the orbit kinematics at that radius",
	Long: "Propagates a two-line element set with SGP4 to the given instant and\n" +
		"evaluates the circular-orbit formulas at the resulting geocentric radius,\n" +
		"alongside the propagated state itself.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		earth, ok := cat.Body("Earth")
		if !ok {
			return fmt.Errorf("catalog is missing Earth")
		}

		tle1, _ := cmd.Flags().GetString("tle1")
		tle2, _ := cmd.Flags().GetString("tle2")
		if tle1 == "" || tle2 == "" {
			return fmt.Errorf("--tle1 and --tle2 are required")
		}

		at := time.Now().UTC()
		if raw, _ := cmd.Flags().GetString("at"); raw != "" {
			at, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				return fmt.Errorf("parse --at: %w", err)
			}
			at = at.UTC()
		}

		sat := satellite.TLEToSat(tle1, tle2, satellite.GravityWGS72)

		year, month, day := at.Date()
		hour, min, sec := at.Clock()

		// go-satellite works in kilometres.
		posECI, velECI := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
		jd := satellite.JDay(year, int(month), day, hour, min, sec)
		gmst := satellite.ThetaG_JD(jd)
		posECEF := satellite.ECIToECEF(posECI, gmst)

		radiusKm := vecNorm(posECI)
		speedKmS := vecNorm(velECI)

		radius := unit.NewKilometers(radiusKm).Meters()
		mu := earth.Mu()

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

		fmt.Printf("State at %s:\n", at.Format(time.RFC3339))
		fmt.Printf("  ECI position:   [%.1f, %.1f, %.1f] km\n", posECI.X, posECI.Y, posECI.Z)
		fmt.Printf("  ECEF position:  [%.1f, %.1f, %.1f] km\n", posECEF.X, posECEF.Y, posECEF.Z)
		fmt.Printf("  geocentric radius:  %.1f km (altitude %.1f km)\n",
			radiusKm, radiusKm-earth.Radius.Value())
		fmt.Printf("  propagated speed:   %.3f km/s\n", speedKmS)
		fmt.Println("Circular orbit at that radius:")
		fmt.Printf("  orbital velocity:  %.2f m/s\n", velocity.Value())
		fmt.Printf("  orbital period:    %.1f s\n", period.Value())
		fmt.Printf("  angular velocity:  %.6e rad/s\n", omega.Value())
		return nil
	},
}

func vecNorm(v satellite.Vector3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func init() {
	trackCmd.Flags().String("tle1", "", "TLE line 1")
	trackCmd.Flags().String("tle2", "", "TLE line 2")
	trackCmd.Flags().String("at", "", "instant to propagate to (RFC3339, default now)")
	rootCmd.AddCommand(trackCmd)
}
