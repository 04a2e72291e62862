package domain

// StateActionType - Внутренний числовой идентификатор атомарной дельты состояния
type StateActionType uint8

const (
	ActionNone StateActionType = iota
	ActionRecordAction
	ActionApplyResolverResult
	ActionRejected
	ActionAddRevealAck
	ActionClearRevealAck
	ActionSetWitchContext
	ActionSetWolfRobotContext
	ActionStartNight
	ActionAdvanceStep
	ActionEndNight
	ActionAssignRoles
	ActionRestartGame
	ActionUpdateTemplate
	ActionPlayerJoin
	ActionPlayerLeave
	ActionPlayerViewedRole
	ActionSetWolfRobotHunterStatusViewed
	ActionSetNightReviewAllowedSeats
	ActionSetAudioPlaying
)

var stateActionToString = map[StateActionType]string{
	ActionRecordAction:                   "RecordAction",
	ActionApplyResolverResult:            "ApplyResolverResult",
	ActionRejected:                       "ActionRejected",
	ActionAddRevealAck:                   "AddRevealAck",
	ActionClearRevealAck:                 "ClearRevealAck",
	ActionSetWitchContext:                "SetWitchContext",
	ActionSetWolfRobotContext:            "SetWolfRobotContext",
	ActionStartNight:                     "StartNight",
	ActionAdvanceStep:                    "AdvanceStep",
	ActionEndNight:                       "EndNight",
	ActionAssignRoles:                    "AssignRoles",
	ActionRestartGame:                    "RestartGame",
	ActionUpdateTemplate:                 "UpdateTemplate",
	ActionPlayerJoin:                     "PlayerJoin",
	ActionPlayerLeave:                    "PlayerLeave",
	ActionPlayerViewedRole:               "PlayerViewedRole",
	ActionSetWolfRobotHunterStatusViewed: "SetWolfRobotHunterStatusViewed",
	ActionSetNightReviewAllowedSeats:     "SetNightReviewAllowedSeats",
	ActionSetAudioPlaying:                "SetAudioPlaying",
}

// String реализует интерфейс Stringer
func (t StateActionType) String() string {
	if val, ok := stateActionToString[t]; ok {
		return val
	}
	return "None"
}

// NightUpdates - частичное обновление агрегата ночи, вычисленное резолвером.
// nil-поле означает "не трогать". Reducer сливает его в NightResults.
type NightUpdates struct {
	BlockedSeat      *int         `json:"blockedSeat,omitempty"`
	WolfKillDisabled *bool        `json:"wolfKillDisabled,omitempty"`
	Vote             *SeatVote    `json:"vote,omitempty"`
	GuardedSeat      *int         `json:"guardedSeat,omitempty"`
	SavedSeat        *int         `json:"savedSeat,omitempty"`
	PoisonedSeat     *int         `json:"poisonedSeat,omitempty"`
	CharmedSeat      *int         `json:"charmedSeat,omitempty"`
	DreamSeat        *int         `json:"dreamSeat,omitempty"`
	SwapSeats        []int        `json:"swapSeats,omitempty"`
	Learned          *LearnedRole `json:"learned,omitempty"`
	SeerCheckSeat    *int         `json:"seerCheckSeat,omitempty"`
}

// StateAction - одна атомарная дельта состояния. Хендлеры никогда не
// мутируют GameState сами: они возвращают упорядоченный список таких
// дельт, а применяет их Reducer, мутируя ровно те поля, которые
// называет тег действия.
type StateAction struct {
	Type StateActionType `json:"type"`

	// Поля по типу действия; незадействованные остаются нулевыми.
	Seat        int               `json:"seat,omitempty"`
	UID         string            `json:"uid,omitempty"`
	DisplayName string            `json:"displayName,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	Step        StepID            `json:"step,omitempty"`
	AckKey      string            `json:"ackKey,omitempty"`
	Audio       bool              `json:"audio,omitempty"`
	Viewed      bool              `json:"viewed,omitempty"`
	Template    []RoleID          `json:"template,omitempty"`
	Assignments map[int]RoleID    `json:"assignments,omitempty"`
	Plan        []StepID          `json:"plan,omitempty"`
	Seats       []int             `json:"seats,omitempty"`
	Record      *RecordedAction   `json:"record,omitempty"`
	Updates     *NightUpdates     `json:"updates,omitempty"`
	Reveal      *Reveal           `json:"reveal,omitempty"`
	WitchCtx    *WitchContext     `json:"witchContext,omitempty"`
	RobotCtx    *WolfRobotContext `json:"wolfRobotContext,omitempty"`
	Deaths      []int             `json:"deaths,omitempty"`
}
