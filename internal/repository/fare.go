package repository

const (
	DefaultBaseFare = 3000
	DefaultFareStep = 50
)

// FareSchedule prices seat i (0-based booking order) at Base + Step*i.
type FareSchedule struct {
	Base int
	Step int
}

func DefaultFareSchedule() FareSchedule {
	return FareSchedule{Base: DefaultBaseFare, Step: DefaultFareStep}
}

func (s FareSchedule) Quote(booked int) int {
	return s.Base + s.Step*booked
}

// Revenue sums Quote(i) for i in [0, booked).
func (s FareSchedule) Revenue(booked int) int {
	return s.Base*booked + s.Step*booked*(booked-1)/2
}
