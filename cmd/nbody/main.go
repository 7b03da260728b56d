// Command nbody runs the N-body gravitational simulation core end to
// end: load a CSV dataset, normalize it into internal units, cancel the
// system's net momentum, run the fixed-step pipeline, then denormalize
// and write the result back out.
//
// Follows the teacher's examples/celestial_simulator/main.go idiom:
// stdlib flag for every command-line option, stdlib log for progress and
// fatal errors.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/nbodysim/barnes-hut/core/units"
	"github.com/nbodysim/barnes-hut/io/bodycsv"
	"github.com/nbodysim/barnes-hut/physics/body"
	"github.com/nbodysim/barnes-hut/simulation/config"
	"github.com/nbodysim/barnes-hut/simulation/driver"
	"github.com/nbodysim/barnes-hut/simulation/pipeline"
	"github.com/nbodysim/barnes-hut/simulation/scheduler"
	"github.com/nbodysim/barnes-hut/simulation/state"
)

func main() {
	dataset := flag.String("dataset", "", "path to the input CSV dataset (required)")
	output := flag.String("output", "", "path to write the result CSV (defaults to overwriting -dataset)")
	timeStep := flag.Float64("time-step", 3600, "time step in seconds")
	duration := flag.Float64("duration", 365.25*86400, "total simulated duration in seconds")
	workers := flag.Int("workers", 1, "worker count for the bulk scheduler")
	algorithm := flag.String("algorithm", string(config.AlgorithmBarnesHut), "acceleration algorithm: naive or barnes_hut")
	softening := flag.Float64("softening", 0.05, "distance softening factor")
	scheduleKind := flag.String("schedule", "static", "bulk schedule kind: static or dynamic")
	normalized := flag.Bool("normalized-input", false, "treat the input dataset as already in internal units (km, km/s, solar masses)")
	flag.Parse()

	if *dataset == "" {
		log.Fatalf("nbody: -dataset is required")
	}
	if *output == "" {
		*output = *dataset
	}

	cfg := config.NewBuilder().
		WithDataset(*dataset).
		WithTimeStep(*timeStep).
		WithDuration(*duration).
		WithWorkerCounts(*workers).
		WithAlgorithm(config.Algorithm(*algorithm)).
		WithSoftening(*softening).
		Build()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("nbody: invalid configuration: %v", err)
	}

	records, err := loadDataset(*dataset)
	if err != nil {
		log.Fatalf("nbody: %v", err)
	}
	log.Printf("nbody: loaded %d bodies from %s", len(records), *dataset)

	if !*normalized {
		for i := range records {
			massSolar, pos, vel := units.NormalizeBody(records[i].Mass, records[i].Position, records[i].Velocity)
			records[i].Mass = massSolar
			records[i].Position = pos
			records[i].Velocity = vel
		}
	}

	body.CancelSystemMomentum(records)

	owned := toOwnedState(records, cfg.Softening)

	kind := scheduler.Static
	if *scheduleKind == "dynamic" {
		kind = scheduler.Dynamic
	}
	exec := scheduler.NewWorkerPool(scheduler.Config{WorkerCount: *workers, ScheduleKind: kind})

	algo, err := cfg.Algorithm.ToPipelineAlgorithm()
	if err != nil {
		log.Fatalf("nbody: %v", err)
	}
	p := pipeline.New(exec, algo)

	log.Printf("nbody: running %s for %g s at dt=%g s with %d worker(s)", *algorithm, cfg.Duration, cfg.TimeStep, *workers)
	if err := driver.Run(context.Background(), p, owned.View(), cfg.TimeStep, cfg.Duration); err != nil {
		log.Fatalf("nbody: simulation failed: %v", err)
	}

	fromOwnedState(owned, records)

	if !*normalized {
		for i := range records {
			massKg, pos, vel := units.DenormalizeBody(records[i].Mass, records[i].Position, records[i].Velocity)
			records[i].Mass = massKg
			records[i].Position = pos
			records[i].Velocity = vel
		}
	}

	if err := saveDataset(*output, records); err != nil {
		log.Fatalf("nbody: %v", err)
	}
	log.Printf("nbody: wrote result to %s", *output)
}

func loadDataset(path string) ([]body.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bodycsv.Decode(f)
}

func saveDataset(path string, records []body.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bodycsv.Encode(f, records)
}

func toOwnedState(records []body.Record, softening float64) *state.Owned {
	s := state.NewOwned(len(records), softening)
	for i, r := range records {
		s.Positions[i] = r.Position
		s.Velocities[i] = r.Velocity
		s.Masses[i] = r.Mass
	}
	return s
}

func fromOwnedState(s *state.Owned, records []body.Record) {
	for i := range records {
		records[i].Position = s.Positions[i]
		records[i].Velocity = s.Velocities[i]
	}
}
