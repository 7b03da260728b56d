// Package units fornisce un sistema di unità di misura per il motore fisico
package units

import (
	"fmt"

	"github.com/nbodysim/barnes-hut/core/vector"
)

// UnitType rappresenta il tipo di unità di misura
type UnitType int

const (
	// Length rappresenta un'unità di lunghezza
	Length UnitType = iota
	// Mass rappresenta un'unità di massa
	Mass
	// Time rappresenta un'unità di tempo
	Time
	// Velocity rappresenta un'unità di velocità
	Velocity
)

// Unit rappresenta un'unità di misura
type Unit interface {
	// Type restituisce il tipo di unità
	Type() UnitType
	// Name restituisce il nome dell'unità
	Name() string
	// Symbol restituisce il simbolo dell'unità
	Symbol() string
	// ConvertTo converte un valore da questa unità a un'altra
	ConvertTo(value float64, target Unit) float64
	// ConvertFrom converte un valore da un'altra unità a questa
	ConvertFrom(value float64, source Unit) float64
}

// BaseUnit implementa un'unità di misura di base
type BaseUnit struct {
	unitType UnitType
	name     string
	symbol   string
	factor   float64 // Fattore di conversione rispetto all'unità di riferimento
	offset   float64 // Offset per unità con punto zero diverso
}

// NewBaseUnit crea una nuova unità di base
func NewBaseUnit(unitType UnitType, name, symbol string, factor, offset float64) *BaseUnit {
	return &BaseUnit{
		unitType: unitType,
		name:     name,
		symbol:   symbol,
		factor:   factor,
		offset:   offset,
	}
}

// Type restituisce il tipo di unità
func (u *BaseUnit) Type() UnitType {
	return u.unitType
}

// Name restituisce il nome dell'unità
func (u *BaseUnit) Name() string {
	return u.name
}

// Symbol restituisce il simbolo dell'unità
func (u *BaseUnit) Symbol() string {
	return u.symbol
}

// ConvertTo converte un valore da questa unità a un'altra
func (u *BaseUnit) ConvertTo(value float64, target Unit) float64 {
	if u.Type() != target.Type() {
		panic(fmt.Sprintf("Cannot convert between different unit types: %v and %v", u.Type(), target.Type()))
	}

	// Converti prima nell'unità di riferimento del tipo
	refValue := (value + u.offset) * u.factor

	var targetUnit *BaseUnit
	switch t := target.(type) {
	case *BaseUnit:
		targetUnit = t
	case *DerivedUnit:
		targetUnit = &t.BaseUnit
	default:
		panic("Target unit is not a BaseUnit or DerivedUnit")
	}

	return (refValue / targetUnit.factor) - targetUnit.offset
}

// ConvertFrom converte un valore da un'altra unità a questa
func (u *BaseUnit) ConvertFrom(value float64, source Unit) float64 {
	return source.(*BaseUnit).ConvertTo(value, u)
}

// DerivedUnit implementa un'unità di misura derivata
type DerivedUnit struct {
	BaseUnit
	components map[Unit]int // Mappa di unità base e loro esponenti
}

// NewDerivedUnit crea una nuova unità derivata
func NewDerivedUnit(unitType UnitType, name, symbol string, components map[Unit]int) *DerivedUnit {
	factor := 1.0
	for unit, exp := range components {
		baseUnit, ok := unit.(*BaseUnit)
		if !ok {
			panic("Component unit is not a BaseUnit")
		}
		for e := 0; e < exp; e++ {
			factor *= baseUnit.factor
		}
		for e := 0; e > exp; e-- {
			factor /= baseUnit.factor
		}
	}

	return &DerivedUnit{
		BaseUnit: BaseUnit{
			unitType: unitType,
			name:     name,
			symbol:   symbol,
			factor:   factor,
			offset:   0,
		},
		components: components,
	}
}

// Unità di lunghezza. Meter è l'unità di riferimento interna.
var (
	Meter     = NewBaseUnit(Length, "meter", "m", 1.0, 0.0)
	Kilometer = NewBaseUnit(Length, "kilometer", "km", 1000.0, 0.0)
	Parsec    = NewBaseUnit(Length, "parsec", "pc", 3.08567758129e16, 0.0)
)

// Unità di massa. Kilogram è l'unità di riferimento interna.
var (
	Kilogram  = NewBaseUnit(Mass, "kilogram", "kg", 1.0, 0.0)
	SolarMass = NewBaseUnit(Mass, "solar mass", "M☉", 1.988435e30, 0.0)
)

// Unità di tempo. Second è l'unità di riferimento interna.
var (
	Second = NewBaseUnit(Time, "second", "s", 1.0, 0.0)
	Year   = NewBaseUnit(Time, "year", "yr", 365.25*86400, 0.0)
)

// Unità di velocità.
var (
	KilometerPerSecond = NewDerivedUnit(Velocity, "kilometer per second", "km/s", map[Unit]int{
		Kilometer: 1,
		Second:    -1,
	})
	ParsecPerYear = NewDerivedUnit(Velocity, "parsec per year", "pc/yr", map[Unit]int{
		Parsec: 1,
		Year:   -1,
	})
)

// Quantity rappresenta una quantità fisica con un valore e un'unità
type Quantity struct {
	value float64
	unit  Unit
}

// NewQuantity crea una nuova quantità
func NewQuantity(value float64, unit Unit) Quantity {
	return Quantity{
		value: value,
		unit:  unit,
	}
}

// Value restituisce il valore della quantità
func (q Quantity) Value() float64 {
	return q.value
}

// Unit restituisce l'unità della quantità
func (q Quantity) Unit() Unit {
	return q.unit
}

// ConvertTo converte la quantità in un'altra unità
func (q Quantity) ConvertTo(unit Unit) Quantity {
	return NewQuantity(q.unit.ConvertTo(q.value, unit), unit)
}

// String restituisce una rappresentazione testuale della quantità
func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.value, q.unit.Symbol())
}

// Add somma due quantità (convertendo se necessario)
func (q Quantity) Add(other Quantity) Quantity {
	if q.unit.Type() != other.unit.Type() {
		panic(fmt.Sprintf("Cannot add quantities of different types: %v and %v", q.unit.Type(), other.unit.Type()))
	}
	otherValue := other.unit.ConvertTo(other.value, q.unit)
	return NewQuantity(q.value+otherValue, q.unit)
}

// Sub sottrae due quantità (convertendo se necessario)
func (q Quantity) Sub(other Quantity) Quantity {
	if q.unit.Type() != other.unit.Type() {
		panic(fmt.Sprintf("Cannot subtract quantities of different types: %v and %v", q.unit.Type(), other.unit.Type()))
	}
	otherValue := other.unit.ConvertTo(other.value, q.unit)
	return NewQuantity(q.value-otherValue, q.unit)
}

// Mul moltiplica una quantità per uno scalare
func (q Quantity) Mul(scalar float64) Quantity {
	return NewQuantity(q.value*scalar, q.unit)
}

// Div divide una quantità per uno scalare
func (q Quantity) Div(scalar float64) Quantity {
	if scalar == 0 {
		panic("Division by zero")
	}
	return NewQuantity(q.value/scalar, q.unit)
}

// NormalizeBody converts a body's mass, position and velocity from an
// external dataset's units (kilograms, parsecs, parsecs/year) into this
// simulation's internal units (solar masses, kilometers, kilometers/second).
//
// Grounded in solarsim's tools/src/std_main.cpp normalize_body_values.
func NormalizeBody(massKg float64, position, velocity vector.Vector3) (massSolar float64, normPosition, normVelocity vector.Vector3) {
	massSolar = Kilogram.ConvertTo(massKg, SolarMass)
	normPosition = convertVec3(position, Parsec, Kilometer)
	normVelocity = convertVec3(velocity, ParsecPerYear, KilometerPerSecond)
	return
}

// DenormalizeBody is the inverse of NormalizeBody: it converts mass,
// position and velocity from internal units back into the external
// dataset's units.
func DenormalizeBody(massSolar float64, position, velocity vector.Vector3) (massKg float64, denormPosition, denormVelocity vector.Vector3) {
	massKg = SolarMass.ConvertTo(massSolar, Kilogram)
	denormPosition = convertVec3(position, Kilometer, Parsec)
	denormVelocity = convertVec3(velocity, KilometerPerSecond, ParsecPerYear)
	return
}

func convertVec3(v vector.Vector3, from, to Unit) vector.Vector3 {
	return vector.NewVector3(
		from.ConvertTo(v.X(), to),
		from.ConvertTo(v.Y(), to),
		from.ConvertTo(v.Z(), to),
	)
}
