package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// IntentEnvelope это корневой объект для всех сообщений от клиента к серверу.
// Транспорт уже аутентифицировал отправителя: uid и признак хоста
// навешиваются сервером, клиентскому полю не доверяем.
type IntentEnvelope struct {
	// Type название намерения (JOIN_SEAT, SUBMIT_ACTION, ...).
	Type string `json:"type"`

	// Payload JSON-объект с данными намерения. Структура зависит от Type.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// ActionInput - поданное ночное действие. Поля-указатели различают
// "не подано" и "подано значение".
type ActionInput struct {
	Confirmed *bool `json:"confirmed,omitempty"`
	Target    *int  `json:"target,omitempty"`
	Targets   []int `json:"targets,omitempty"`
	Save      *int  `json:"save,omitempty"`
	Poison    *int  `json:"poison,omitempty"`
}

// JoinSeatPayload - занять место.
type JoinSeatPayload struct {
	Seat        int    `json:"seat"`
	DisplayName string `json:"displayName,omitempty"`
}

// UpdateTemplatePayload - сменить шаблон доски: явный список ролей
// или имя пресета (см. pkg/boards).
type UpdateTemplatePayload struct {
	Roles  []string `json:"roles,omitempty"`
	Preset string   `json:"preset,omitempty"`
}

// SubmitActionPayload - подача ночного действия.
type SubmitActionPayload struct {
	Seat   int         `json:"seat"`
	Role   string      `json:"role"`
	Action ActionInput `json:"action"`
}

// WolfVotePayload - голос волчьего совещания.
// Target = -1 - легаси-сентинел "пустой нож".
type WolfVotePayload struct {
	Seat   int `json:"seat"`
	Target int `json:"target"`
}

// ViewedRolePayload - игрок посмотрел свою роль.
type ViewedRolePayload struct {
	Seat int `json:"seat"`
}

// ShareNightReviewPayload - каким местам хост открывает ночной обзор.
type ShareNightReviewPayload struct {
	Seats []int `json:"seats"`
}

// AckRevealPayload - клиент подтвердил показ приватного результата.
type AckRevealPayload struct {
	Key string `json:"key"`
}

// AudioPayload - хост включил/выключил озвучку (кооперативный замок).
type AudioPayload struct {
	Playing bool `json:"playing"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerMessage - исходящее сообщение сокета: либо проекция состояния,
// либо адресный результат намерения.
type ServerMessage struct {
	Kind   string        `json:"kind"` // "state" | "result"
	State  *StateView    `json:"state,omitempty"`
	Result *IntentResult `json:"result,omitempty"`
}

// IntentResult - ответ на одно намерение: вердикт, дельты и директивы
// эффектов. Причины отказа - стабильные коды, не свободный текст.
type IntentResult struct {
	Type        string            `json:"type"`
	Success     bool              `json:"success"`
	Reason      string            `json:"reason,omitempty"`
	Actions     []json.RawMessage `json:"actions,omitempty"`
	SideEffects []string          `json:"sideEffects,omitempty"`
}

// StateView это broadcast-проекция канонического состояния для
// read-only зеркал клиентов. Выводится из GameState без потерь;
// ключи мест нормализованы в строки.
type StateView struct {
	RoomCode string `json:"roomCode"`
	HostUID  string `json:"hostUid"`
	Status   string `json:"status"`

	TemplateRoles []string               `json:"templateRoles"`
	Players       map[string]*PlayerView `json:"players"`

	CurrentStepIndex int      `json:"currentStepIndex"`
	CurrentStepID    string   `json:"currentStepId,omitempty"`
	Plan             []string `json:"plan,omitempty"`

	IsAudioPlaying bool `json:"isAudioPlaying"`

	Night             *NightView            `json:"currentNightResults,omitempty"`
	WitchContext      *WitchContextView     `json:"witchContext,omitempty"`
	WolfRobotContext  *WolfRobotContextView `json:"wolfRobotContext,omitempty"`
	Reveals           map[string]RevealView `json:"reveals,omitempty"`
	PendingRevealAcks []string              `json:"pendingRevealAcks,omitempty"`

	WolfRobotHunterStatusViewed bool `json:"wolfRobotHunterStatusViewed"`

	Deaths           []int `json:"deaths,omitempty"`
	NightReviewSeats []int `json:"nightReviewSeats,omitempty"`
}

// PlayerView это DTO игрока на месте.
type PlayerView struct {
	UID           string `json:"uid"`
	SeatNumber    int    `json:"seatNumber"`
	Role          string `json:"role,omitempty"`
	HasViewedRole bool   `json:"hasViewedRole"`
	DisplayName   string `json:"displayName,omitempty"`
}

// NightView - агрегат текущей ночи в broadcast-форме.
type NightView struct {
	Votes            map[string]int `json:"votes,omitempty"`
	BlockedSeat      int            `json:"blockedSeat"`
	WolfKillDisabled bool           `json:"wolfKillDisabled"`
	GuardedSeat      int            `json:"guardedSeat"`
	SavedSeat        int            `json:"savedSeat"`
	PoisonedSeat     int            `json:"poisonedSeat"`
	CharmedSeat      int            `json:"charmedSeat"`
	DreamSeat        int            `json:"dreamSeat"`
	SwapSeats        []int          `json:"swapSeats,omitempty"`
	SeerCheckSeat    int            `json:"seerCheckSeat"`
}

// WitchContextView - контекст шага ведьмы.
type WitchContextView struct {
	KilledSeat int  `json:"killedSeat"`
	CanSave    bool `json:"canSave"`
	CanPoison  bool `json:"canPoison"`
}

// WolfRobotContextView - контекст шага механического волка.
type WolfRobotContextView struct {
	CanLearn bool `json:"canLearn"`
}

// RevealView - приватный результат проверки.
type RevealView struct {
	Target  int    `json:"target"`
	Verdict string `json:"verdict"`
}

// --- HTTP ---

// CreateRoomRequest - создание комнаты хостом.
type CreateRoomRequest struct {
	HostUID string   `json:"hostUid"`
	Roles   []string `json:"roles,omitempty"`
	Preset  string   `json:"preset,omitempty"`
}

// CreateRoomResponse - код созданной комнаты.
type CreateRoomResponse struct {
	RoomCode string `json:"roomCode"`
}
