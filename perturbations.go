package orbitalsim

// ForceModel is the common contract of the five perturbation sources. ApplyPerturbation
// mutates the satellite elements through its Adjust mutators only; CurrentAcceleration
// is a pure diagnostic read with no mutation. Models get a fresh Environment snapshot
// on every invocation.
type ForceModel interface {
	Name() string
	ApplyPerturbation(s *Satellite, dt float64, env Environment)
	CurrentAcceleration(s *Satellite, env Environment) float64
}

const (
	// minBodyDistance guards the third-body and SRP geometry against coincident
	// bodies: below it, the model skips its contribution for the sub-step instead of
	// blowing up.
	minBodyDistance = 1e3 // meters
)

// EnabledModels returns the names of the models this satellite applies each sub-step.
func (s *Satellite) EnabledModels() []string {
	names := make([]string, len(s.enabled))
	for i, m := range s.enabled {
		names[i] = m.Name()
	}
	return names
}
