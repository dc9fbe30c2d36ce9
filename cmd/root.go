package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/liftsim/liftsim/sim"
)

var (
	// CLI flags for the simulation run
	passengers int    // Number of passengers to generate
	floors     int    // Number of floors in the building
	capacity   int    // Max passengers in the car at once
	seed       int64  // Seed for random trip generation
	logLevel   string // Log verbosity level
	scenario   string // Optional scenario YAML path
	showLog    bool   // Print the full event log after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "liftsim",
	Short: "Single-car elevator simulator with a SCAN dispatch policy",
}

// runCmd executes the simulation using parameters from CLI flags or a
// scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the elevator simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		startTime := time.Now() // Get current time (start)

		var (
			elevator *sim.Elevator
			trips    []*sim.Passenger
		)
		if scenario != "" {
			sc, err := sim.LoadScenario(scenario)
			if err != nil {
				logrus.Fatalf("Unable to load scenario %s: %v", scenario, err)
			}
			elevator, trips, err = sc.Build()
			if err != nil {
				logrus.Fatalf("Unable to build scenario %s: %v", scenario, err)
			}
			seed = sc.Seed
		} else {
			elevator, err = sim.NewElevator(floors, capacity)
			if err != nil {
				logrus.Fatalf("Unable to create elevator: %v", err)
			}
			rng := sim.SimulationKey(seed).Rand(sim.SubsystemTrips)
			trips, err = sim.GeneratePassengers(passengers, elevator, rng)
			if err != nil {
				logrus.Fatalf("Unable to generate passengers: %v", err)
			}
		}

		// Log configuration
		logrus.Infof("Starting simulation with %d passengers, %d floors, capacity=%d, seed=%d",
			len(trips), elevator.MaxFloor(), elevator.Capacity(), seed)

		// Initialize and run the simulation driver
		s := sim.NewSimulator(elevator, trips)
		if err := s.Run(); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		s.Metrics.Print(startTime)

		if showLog {
			for _, entry := range elevator.Log().Entries() {
				fmt.Println(entry)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&passengers, "passengers", 10, "Number of passengers to generate")
	runCmd.Flags().IntVar(&floors, "floors", 10, "Number of floors in the building")
	runCmd.Flags().IntVar(&capacity, "capacity", sim.DefaultCapacity, "Max passengers in the car at once")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random trip generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "Scenario YAML file (overrides the flags above)")
	runCmd.Flags().BoolVar(&showLog, "show-log", false, "Print the full event log after the run")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
