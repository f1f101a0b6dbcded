package sim

// Integrator advances every entity that has both Position and Velocity.
type Integrator struct {
	DT float64 // Fixed tick length in seconds
}

// Name implements System.
func (*Integrator) Name() string { return "integrator" }

// Run implements System.
func (s *Integrator) Run(f *Frame) error {
	for id := range f.World.Entities() {
		pos := f.World.Position(id)
		vel := f.World.Velocity(id)
		if pos == nil || vel == nil {
			continue
		}
		pos.X += vel.X * s.DT
		pos.Y += vel.Y * s.DT
	}
	return nil
}
