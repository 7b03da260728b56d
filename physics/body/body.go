// Package body fornisce il tipo di dato che rappresenta un corpo celeste
// così come arriva da (o viene scritto verso) un dataset CSV.
package body

import (
	"github.com/google/uuid"

	"github.com/nbodysim/barnes-hut/core/vector"
)

// Record rappresenta un corpo celeste: identità, classificazione e stato
// fisico (massa, posizione, velocità). È il tipo di dato scambiato da
// io/bodycsv e caricato in simulation/state per la simulazione.
type Record struct {
	ID    uuid.UUID
	Name  string
	Class string
	Mass  float64 // masse solari (kg prima di units.NormalizeBody)
	Position vector.Vector3 // km (parsec prima di units.NormalizeBody)
	Velocity vector.Vector3 // km/s (parsec/anno prima di units.NormalizeBody)
}

// NewRecord crea un nuovo Record con un ID casuale. io/bodycsv non lo usa:
// legge l'ID dalla colonna id e rifiuta le righe prive di un UUID valido.
func NewRecord(name, class string, mass float64, position, velocity vector.Vector3) Record {
	return Record{
		ID:       uuid.New(),
		Name:     name,
		Class:    class,
		Mass:     mass,
		Position: position,
		Velocity: velocity,
	}
}

// CancelSystemMomentum subtracts the mass-weighted mean velocity of the
// whole set from every record's velocity, so the system's total momentum
// is zero afterward. It mutates records in place.
//
// u = (Σ m_j·v_j) / (Σ m_j), subtracted once from every body's velocity.
//
// This replaces the origin simulator's adjust_initial_velocities, which
// summed only the x-component of every other body's momentum into all
// three adjustment axes and recomputed the (invariant) sum once per body.
// Records with zero total mass are left untouched.
func CancelSystemMomentum(records []Record) {
	if len(records) == 0 {
		return
	}

	var massSum float64
	momentum := vector.Zero3()
	for _, r := range records {
		massSum += r.Mass
		momentum = momentum.Add(r.Velocity.Scale(r.Mass))
	}
	if massSum == 0 {
		return
	}

	meanVelocity := momentum.Scale(1.0 / massSum)
	for i := range records {
		records[i].Velocity = records[i].Velocity.Sub(meanVelocity)
	}
}

// TotalMass returns the sum of every record's mass.
func TotalMass(records []Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Mass
	}
	return sum
}
