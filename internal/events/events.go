package events

type PhaseChangeEvent struct {
	SessionID string
	Phase     string
}

type Bus struct {
	PhaseChanges chan PhaseChangeEvent
}

func NewBus() *Bus {
	return &Bus{
		PhaseChanges: make(chan PhaseChangeEvent, 10),
	}
}
