package process

// State 프로세스 핸들의 생명주기 상태입니다.
//
//	Pending -> Running -> Done | Cancelled | Failed
//
// Done, Cancelled, Failed는 종료 상태이며 한 번 진입하면 다시 바뀌지 않습니다.
type State int

const (
	StatePending State = iota
	StateRunning
	StateDone
	StateCancelled
	StateFailed
)

var stateNames = [...]string{
	StatePending:   "Pending",
	StateRunning:   "Running",
	StateDone:      "Done",
	StateCancelled: "Cancelled",
	StateFailed:    "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsTerminal 종료 상태(Done, Cancelled, Failed)인지 여부를 반환합니다.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateCancelled || s == StateFailed
}
