// Package constants fornisce costanti fisiche per il motore fisico
package constants

// Costanti fisiche universali
const (
	// Pi è il rapporto tra la circonferenza e il diametro di un cerchio
	Pi = 3.14159265358979323846

	// GravitationalConstantSI è la costante gravitazionale universale in
	// unità SI: m³ kg⁻¹ s⁻² (G = 6.67428e-11, valore usato dal simulatore
	// di origine anziché il CODATA più recente, per riprodurne i risultati).
	GravitationalConstantSI = 6.67428e-11
)

// Costanti astronomiche
const (
	// SolarMassKg è la massa del Sole in chilogrammi.
	SolarMassKg = 1.988435e30

	// ParsecInMeters è il parsec espresso in metri.
	ParsecInMeters = 3.08567758129e16

	// ParsecInKm è il parsec espresso in chilometri.
	ParsecInKm = ParsecInMeters / 1000.0

	// YearInSeconds è l'anno giuliano medio espresso in secondi.
	YearInSeconds = 365.25 * 86400
)

// GravitationalConstant è la costante gravitazionale nelle unità interne
// della simulazione: km · (km/s)² · M☉⁻¹. Deriva da GravitationalConstantSI
// convertendo metri in chilometri (due fattori di 1000, uno per la
// distanza e uno al quadrato per la velocità) e chilogrammi in masse
// solari.
const GravitationalConstant = GravitationalConstantSI / 1000 / (1000 * 1000) * SolarMassKg

// Epsilon è un valore piccolo usato per confronti di uguaglianza tra float.
const Epsilon = 1e-10
