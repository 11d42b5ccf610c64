package component

// AIBehavior selects how an AI-controlled entity picks its next step.
type AIBehavior uint8

const (
	BehaviorChase      AIBehavior = iota // step toward the nearest living human
	BehaviorFlee                         // step away from the nearest living human
	BehaviorStationary                   // never moves
)

func (b AIBehavior) String() string {
	switch b {
	case BehaviorChase:
		return "chase"
	case BehaviorFlee:
		return "flee"
	case BehaviorStationary:
		return "stationary"
	}
	return "unknown"
}

// AI configures an AI behavior. SightRange of zero means unlimited.
type AI struct {
	Behavior   AIBehavior
	SightRange int
}
