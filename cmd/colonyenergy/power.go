package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"colony_energy_calc/energy"
)

var solarArea float64

var solarCmd = &cobra.Command{
	Use:   "solar",
	Short: "Photovoltaic energy over one Martian year",
	RunE: func(cmd *cobra.Command, args []string) error {
		arr := energy.NewSolarArray(solarArea, viper.GetUint64("seed"))
		sum := energy.Summarize(arr.E_ns())

		logger.Debug("solar series drawn", "sols", len(arr.E_ns()), "area_m2", solarArea)

		fmt.Fprintf(cmd.OutOrStdout(),
			"Solar energy for %v m^2 of panels: mean %.1f kJ/sol (min %.1f, max %.1f), %.0f kJ/year\n",
			solarArea, sum.Mean, sum.Min, sum.Max, sum.Total)
		return nil
	},
}

var (
	sabatierWater      float64
	sabatierHydrolysis float64
	sabatierCO2Rate    float64
	sabatierEfficiency float64
)

var sabatierCmd = &cobra.Command{
	Use:   "sabatier",
	Short: "Methane energy from electrolyzed water",
	Long: `Electrolyze a batch of water into dihydrogen, react it with gathered
carbon dioxide in the Sabatier reaction, and report the electrolysis energy
spent and the energy recoverable from burning the methane yield. Parameters
left unset are drawn from their plausible operating ranges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := rand.NewSource(viper.GetUint64("seed"))
		if sabatierHydrolysis < 0 {
			// specific electrolysis energy, kWh per kg of liquid water
			sabatierHydrolysis = distuv.Uniform{Min: 50.0, Max: 56.0, Src: src}.Rand()
		}
		if sabatierCO2Rate < 0 {
			// atmospheric CO2 gathered per hour, kg
			sabatierCO2Rate = distuv.Uniform{Min: 10.7, Max: 106.4, Src: src}.Rand()
		}
		if sabatierEfficiency < 0 {
			sabatierEfficiency = distuv.Uniform{Min: 0.33, Max: 0.75, Src: src}.Rand()
		}

		run := energy.NewSabatierRun(sabatierWater, sabatierHydrolysis, sabatierCO2Rate, sabatierEfficiency)

		logger.Debug("sabatier parameters",
			"hydrolysis_kwh_per_kg", sabatierHydrolysis,
			"co2_rate_kg_per_h", sabatierCO2Rate,
			"efficiency", sabatierEfficiency)

		fmt.Fprintf(cmd.OutOrStdout(),
			"Electrolysis of %v kg of water costs %.1f kJ and yields %.4f kg of methane worth %.1f kJ\n",
			sabatierWater, run.ElectrolysisEnergy(), run.MethaneMass(), run.MethaneEnergy())
		return nil
	},
}

var (
	nuclearMass       float64
	nuclearEfficiency float64
)

var nuclearCmd = &cobra.Command{
	Use:   "nuclear",
	Short: "Energy from a Pu-239 thermal source",
	RunE: func(cmd *cobra.Command, args []string) error {
		if nuclearEfficiency < 0 {
			nuclearEfficiency = energy.DrawNuclearEfficiency(viper.GetUint64("seed"))
		}

		e := energy.NuclearEnergyPerSol(nuclearMass, nuclearEfficiency)

		fmt.Fprintf(cmd.OutOrStdout(),
			"Energy from %v kg of Pu-239 at efficiency %.2f: %v kJ/sol\n",
			nuclearMass, nuclearEfficiency, e)
		return nil
	},
}

var windBlade float64

var windCmd = &cobra.Command{
	Use:   "wind",
	Short: "Wind turbine energy over one Martian year",
	RunE: func(cmd *cobra.Command, args []string) error {
		trb := energy.NewWindTurbine(windBlade, viper.GetUint64("seed"))
		sum := energy.Summarize(trb.E_ns())

		logger.Debug("wind series drawn", "blade_m", windBlade, "efficiency", trb.Efficiency())

		fmt.Fprintf(cmd.OutOrStdout(),
			"Wind energy for %v m blades: mean %.1f kJ/sol (min %.1f, max %.1f), %.0f kJ/year\n",
			windBlade, sum.Mean, sum.Min, sum.Max, sum.Total)
		return nil
	},
}

func init() {
	solarCmd.Flags().Float64Var(&solarArea, "area", 1.0, "panel area, m2")

	sabatierCmd.Flags().Float64Var(&sabatierWater, "water", 1.0, "electrolyzed water, kg")
	sabatierCmd.Flags().Float64Var(&sabatierHydrolysis, "hydrolysis", -1, "specific electrolysis energy, kWh/kg (drawn if unset)")
	sabatierCmd.Flags().Float64Var(&sabatierCO2Rate, "co2-rate", -1, "CO2 gathering rate, kg/h (drawn if unset)")
	sabatierCmd.Flags().Float64Var(&sabatierEfficiency, "efficiency", -1, "methane recovery efficiency (drawn if unset)")

	nuclearCmd.Flags().Float64Var(&nuclearMass, "mass", 1.0, "Pu-239 mass, kg")
	nuclearCmd.Flags().Float64Var(&nuclearEfficiency, "efficiency", -1, "conversion efficiency (drawn if unset)")

	windCmd.Flags().Float64Var(&windBlade, "blade", 1.0, "turbine blade length, m")
}
