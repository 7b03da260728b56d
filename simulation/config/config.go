// Package config fornisce la configurazione per la simulazione
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nbodysim/barnes-hut/physics/kernel"
	"github.com/nbodysim/barnes-hut/simulation/pipeline"
)

// Algorithm identifies which acceleration stage a run should use.
type Algorithm string

const (
	AlgorithmNaive     Algorithm = "naive"
	AlgorithmBarnesHut Algorithm = "barnes_hut"
)

// ToPipelineAlgorithm maps the JSON-facing Algorithm string to the
// pipeline package's internal enum.
func (a Algorithm) ToPipelineAlgorithm() (pipeline.Algorithm, error) {
	switch a {
	case AlgorithmNaive:
		return pipeline.Naive, nil
	case AlgorithmBarnesHut, "":
		return pipeline.BarnesHut, nil
	default:
		return 0, fmt.Errorf("config: unknown algorithm %q", a)
	}
}

// Config rappresenta la configurazione della simulazione: il surface di
// §6.4 — time_step, duration, dataset, worker_counts, algorithm — più il
// softening che §6.5 fissa come parametro di default.
type Config struct {
	// TimeStep è il passo temporale della simulazione, in secondi. Deve
	// essere positivo.
	TimeStep float64 `json:"timeStep"`
	// Duration è la durata totale simulata, in secondi. Deve essere >=
	// TimeStep.
	Duration float64 `json:"duration"`
	// Dataset è il percorso del file CSV di input.
	Dataset string `json:"dataset"`
	// WorkerCounts elenca le cardinalità di worker da esercitare (una
	// esecuzione per ciascuna, utile per il confronto di riproducibilità
	// dello scenario S5).
	WorkerCounts []int `json:"workerCounts"`
	// Algorithm seleziona l'acceleratore ("naive" o "barnes_hut").
	Algorithm Algorithm `json:"algorithm"`
	// Softening è il regolarizzatore di distanza additivo.
	Softening float64 `json:"softening"`
}

// NewDefaultConfig crea una nuova configurazione con valori predefiniti,
// coerenti con le costanti numeriche fisse di §6.5 (softening = 0.05).
func NewDefaultConfig() *Config {
	return &Config{
		TimeStep:     3600, // un'ora, come il benchmark di origine
		Duration:     365.25 * 86400,
		WorkerCounts: []int{1},
		Algorithm:    AlgorithmBarnesHut,
		Softening:    0.05,
	}
}

// Validate checks that the configuration satisfies the loop driver's
// preconditions (time_step > 0, duration >= time_step) and that at least
// one worker count was given.
func (c *Config) Validate() error {
	if c.TimeStep <= 0 {
		return fmt.Errorf("config: time_step must be positive, got %g", c.TimeStep)
	}
	if c.Duration < c.TimeStep {
		return fmt.Errorf("config: duration (%g) must be >= time_step (%g)", c.Duration, c.TimeStep)
	}
	if c.Dataset == "" {
		return fmt.Errorf("config: dataset path is required")
	}
	if len(c.WorkerCounts) == 0 {
		return fmt.Errorf("config: at least one worker count is required")
	}
	for _, w := range c.WorkerCounts {
		if w < 1 {
			return fmt.Errorf("config: worker counts must be positive, got %d", w)
		}
	}
	if _, err := c.Algorithm.ToPipelineAlgorithm(); err != nil {
		return err
	}
	return nil
}

// GravitationalConstant exposes the internal-unit G this configuration's
// runs compute against, for diagnostics/reporting.
func (c *Config) GravitationalConstant() float64 {
	return kernel.G
}

// SaveToFile salva la configurazione su file
func (c *Config) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile carica la configurazione da file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Builder è un builder fluente per Config.
type Builder struct {
	config *Config
}

// NewBuilder crea un nuovo builder inizializzato con i valori predefiniti.
func NewBuilder() *Builder {
	return &Builder{config: NewDefaultConfig()}
}

// WithTimeStep imposta il passo temporale.
func (b *Builder) WithTimeStep(timeStep float64) *Builder {
	b.config.TimeStep = timeStep
	return b
}

// WithDuration imposta la durata totale simulata.
func (b *Builder) WithDuration(duration float64) *Builder {
	b.config.Duration = duration
	return b
}

// WithDataset imposta il percorso del dataset di input.
func (b *Builder) WithDataset(path string) *Builder {
	b.config.Dataset = path
	return b
}

// WithWorkerCounts imposta le cardinalità di worker da esercitare.
func (b *Builder) WithWorkerCounts(counts ...int) *Builder {
	b.config.WorkerCounts = counts
	return b
}

// WithAlgorithm imposta l'algoritmo di accelerazione.
func (b *Builder) WithAlgorithm(algo Algorithm) *Builder {
	b.config.Algorithm = algo
	return b
}

// WithSoftening imposta il regolarizzatore di distanza.
func (b *Builder) WithSoftening(softening float64) *Builder {
	b.config.Softening = softening
	return b
}

// Build restituisce la configurazione.
func (b *Builder) Build() *Config {
	return b.config
}
