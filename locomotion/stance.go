package locomotion

// Stance is the mutually exclusive locomotion mode.
type Stance int

const (
	Stand Stance = iota
	Crouch
	Climb
	Glide
)

func (s Stance) String() string {
	switch s {
	case Stand:
		return "stand"
	case Crouch:
		return "crouch"
	case Climb:
		return "climb"
	case Glide:
		return "glide"
	default:
		return "unknown"
	}
}

// grounded stances take planar move input
func (s Stance) onFoot() bool {
	return s == Stand || s == Crouch
}
