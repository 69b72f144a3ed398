package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"colony_energy_calc/energy"
)

// habitatCmd computes the energy to bring a habitat's air from Mars to
// Earth reference conditions. The pressurized floor area comes from the
// positional argument, or from one line on standard input.
var habitatCmd = &cobra.Command{
	Use:   "habitat [area]",
	Short: "Energy to pressurize and heat a habitat",
	Long: `Compute the isothermal work to pressurize a habitat's air volume from the
Mars surface pressure to one Earth atmosphere, and the sensible heat to raise
it from the Mars to the Earth reference temperature. The air volume is the
pressurized floor area in m2 times the effective habitat height.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if len(args) == 1 {
			raw = args[0]
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "Enter the pressurized floor area in m^2: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read area: %w", err)
			}
			raw = line
		}

		a, err := parseArea(raw)
		if err != nil {
			return err
		}

		h := energy.NewHabitatEnergy(a)
		logger.Debug("habitat air", "volume_m3", h.Volume(), "moles", h.Moles(), "mass_kg", h.AirMass())

		fmt.Fprintf(cmd.OutOrStdout(),
			"Energy For Pressurization: %v kJ, Energy for Heating: %v kJ\n",
			h.PressurizationWork(), h.HeatingEnergy())
		return nil
	},
}

// parseArea converts one line of user input to a floor area. A value that
// does not parse as a floating-point number is the program's only error
// condition and is not retried.
func parseArea(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a numeric area value, got %q", s)
	}
	return a, nil
}
