package domain

// ActionType tags which operation a hook or validator is running for.
type ActionType int

const (
	// ActionRead reads a single entity.
	ActionRead ActionType = iota
	// ActionReadAll reads multiple entities.
	ActionReadAll
	// ActionCreate creates a new entity.
	ActionCreate
	// ActionUpdate updates an existing entity.
	ActionUpdate
	// ActionDelete deletes an existing entity.
	ActionDelete
	// ActionGeneral is a custom action that accepts an input and returns an
	// output on success.
	ActionGeneral
	// ActionStatus is a custom action that accepts an input and returns a
	// bool to indicate its success status.
	ActionStatus
	// ActionResult is a custom action that accepts no input and returns an
	// output on success.
	ActionResult
)

func (a ActionType) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionReadAll:
		return "read_all"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionGeneral:
		return "action"
	case ActionStatus:
		return "status_action"
	case ActionResult:
		return "result_action"
	default:
		return "unknown"
	}
}
