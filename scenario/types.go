package scenario

// Sample is one date's market observation. T is generic so that, under
// AAD, a simulated spot/numeraire can itself be a tape leaf: sensitivities
// to market data then flow through SPOT nodes exactly like sensitivities
// to script-level variables.
type Sample[T any] struct {
	Spot      T
	Numeraire T
}

// Scenario is an ordered sequence of per-date samples, one per event date,
// supplied by an external simulator.
type Scenario[T any] struct {
	Samples []Sample[T]
}

// Len returns the number of dated samples.
func (s *Scenario[T]) Len() int { return len(s.Samples) }

// At returns the sample for event index i.
func (s *Scenario[T]) At(i int) Sample[T] { return s.Samples[i] }
