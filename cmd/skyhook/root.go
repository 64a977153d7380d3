package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/skyhook/catalog"
	"github.com/signalsfoundry/skyhook/celestials"
	"github.com/signalsfoundry/skyhook/materials"
)

var rootCmd = &cobra.Command{
	Use:   "skyhook",
	Short: "Space tether and orbit physics calculator",
	Long: "Skyhook computes momentum-exchange tether performance and circular\n" +
		"orbit kinematics from a catalog of materials and celestial bodies.",
}

// Execute runs the CLI, printing the first error to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "YAML file with extra materials and bodies")
}

// loadCatalog builds the default catalog and folds in the --catalog file
// when one is given.
func loadCatalog() (*catalog.Catalog, error) {
	cat := catalog.NewWithDefaults()

	path, _ := rootCmd.PersistentFlags().GetString("catalog")
	if path == "" {
		return cat, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	if _, err := cat.LoadYAML(f); err != nil {
		return nil, fmt.Errorf("load catalog file: %w", err)
	}
	return cat, nil
}

func materialFromFlags(cmd *cobra.Command, cat *catalog.Catalog) (materials.Material, error) {
	name, _ := cmd.Flags().GetString("material")
	if name == "" {
		return materials.Material{}, fmt.Errorf("--material is required")
	}
	m, ok := cat.Material(name)
	if !ok {
		return materials.Material{}, fmt.Errorf("unknown material %q (see `skyhook materials`)", name)
	}
	return m, nil
}

func bodyFromFlags(cmd *cobra.Command, cat *catalog.Catalog) (celestials.CelestialBody, error) {
	name, _ := cmd.Flags().GetString("body")
	b, ok := cat.Body(name)
	if !ok {
		return celestials.CelestialBody{}, fmt.Errorf("unknown body %q", name)
	}
	return b, nil
}
