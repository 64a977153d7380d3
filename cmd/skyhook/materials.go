package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/skyhook/tether"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List catalog materials with their characteristic velocities",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MATERIAL\tSTRENGTH (GPa)\tDENSITY (kg/m3)\tCHAR. VELOCITY (m/s)")
		for _, m := range cat.ListMaterials() {
			v, err := tether.CharacteristicVelocityForMaterial(m)
			if err != nil {
				return fmt.Errorf("material %q: %w", m.Name, err)
			}
			fmt.Fprintf(w, "%s\t%.2f\t%.0f\t%.2f\n",
				m.Name,
				m.TensileStrength.Value()/1e9,
				m.Density.Value(),
				v.Value(),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
