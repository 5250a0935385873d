package sentiment

// Band pairs an inclusive engagement floor with the magnitude multiplier
// applied to the score's deviation from neutral.
type Band struct {
	Floor      int     `yaml:"floor"`
	Multiplier float64 `yaml:"multiplier"`
}

// Adjuster re-centers a raw sentiment score around engagement. Highly
// upvoted content amplifies the deviation from neutral; lightly downvoted
// content dampens it; heavily downvoted content inverts it as a
// contrarian signal.
type Adjuster struct {
	// Bands are evaluated top-down; the first band whose Floor is at or
	// below the engagement value wins.
	Bands []Band `yaml:"bands"`
	// Fallback applies when engagement is below every band floor.
	Fallback float64 `yaml:"fallback"`
	// InvertAt flips the adjustment direction for engagement at or below
	// this value.
	InvertAt int `yaml:"invert_at"`
	// NegativeDamp scales the deviation for engagement in (InvertAt, 0).
	NegativeDamp float64 `yaml:"negative_damp"`
}

// DefaultAdjuster returns the production bands and factors.
func DefaultAdjuster() Adjuster {
	return Adjuster{
		Bands: []Band{
			{Floor: 50, Multiplier: 1.5},
			{Floor: 10, Multiplier: 1.3},
			{Floor: 3, Multiplier: 1.1},
			{Floor: -2, Multiplier: 1.0},
			{Floor: -9, Multiplier: 1.2},
		},
		Fallback:     1.4,
		InvertAt:     -5,
		NegativeDamp: 0.5,
	}
}

// Adjust maps a raw score and an engagement value to an adjusted score in
// [0,100]. A raw score of exactly Neutral is a fixed point for every
// engagement value.
func (a Adjuster) Adjust(raw, engagement int) int {
	centered := float64(raw - Neutral)

	m := a.Fallback
	for _, b := range a.Bands {
		if engagement >= b.Floor {
			m = b.Multiplier
			break
		}
	}

	sign := 1.0
	switch {
	case engagement <= a.InvertAt:
		sign = -1.0
	case engagement < 0:
		sign = a.NegativeDamp
	}

	return int(clampF(float64(Neutral)+centered*m*sign, 0, 100))
}
