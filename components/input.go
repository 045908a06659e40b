package components

import "github.com/yohamta/donburi"

// ActionID represents a logical demo action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionHit
	ActionToggleSensors
	ActionCyclePolicy
	ActionPause
	ActionStep
	ActionSave
	ActionCount // Must be last - used for array sizing
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	Stick    [2]float64 // left stick, x right and y down, -1 to 1
}

// Action returns the state of a single action.
func (in *InputData) Action(id ActionID) ActionState {
	return ActionState{
		Pressed:     in.Current[id],
		JustPressed: in.Current[id] && !in.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
