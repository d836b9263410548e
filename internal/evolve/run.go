package evolve

import (
	"context"
	"fmt"

	"schrod/internal/quantum"
)

// Frame is one observed snapshot of the evolving wavefunction.
type Frame struct {
	Step int
	Time float64
	Psi  quantum.Packet
}

// Observer receives frames at the configured cadence.
type Observer func(Frame)

// Config controls a time-evolution run.
type Config struct {
	Dt       float64
	Duration float64
	// Every selects the observation cadence: every k-th step is reported.
	// Zero or negative reports every step.
	Every int
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	return nil
}

// Run steps psi0 forward for the configured duration, invoking obs on the
// initial state, every k-th step and the final state. Cancellation is
// honored between steps only; a step never aborts midway. The returned
// packet is the final state; psi0 is left untouched.
func Run(ctx context.Context, st *Stepper, psi0 quantum.Packet, cfg Config, obs Observer) (quantum.Packet, error) {
	if err := cfg.validate(); err != nil {
		return quantum.Packet{}, err
	}
	every := cfg.Every
	if every < 1 {
		every = 1
	}

	steps := int(cfg.Duration / cfg.Dt)
	psi := psi0.Clone()
	if obs != nil {
		obs(Frame{Step: 0, Time: 0, Psi: psi.Clone()})
	}

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return psi, ctx.Err()
		default:
		}

		next, err := st.Step(psi)
		if err != nil {
			return psi, &quantum.StepError{Step: i, Time: float64(i) * cfg.Dt, Wrapped: err}
		}
		if !next.IsFinite() {
			return psi, &quantum.StepError{
				Step: i, Time: float64(i) * cfg.Dt,
				Wrapped: fmt.Errorf("non-finite wavefunction"),
			}
		}
		psi = next

		if obs != nil && (i%every == 0 || i == steps) {
			obs(Frame{Step: i, Time: float64(i) * cfg.Dt, Psi: psi.Clone()})
		}
	}
	return psi, nil
}
