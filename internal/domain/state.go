package domain

import (
	"encoding/json"
	"fmt"
)

// NoSeat - сентинел "места нет": пустой нож, никто не заблокирован и т.д.
// Отличать от "ещё не голосовал": отсутствие записи в Votes.
const NoSeat = -1

// AckKeyWolfRobotHunterStatus - ключ подтверждения "механический волк
// выучил охотника и обязан увидеть статус ружья" (блокирует продвижение
// ночи до подтверждения клиентом).
const AckKeyWolfRobotHunterStatus = "wolfRobotHunterStatus"

// Player - игрок, занявший место.
// Создается на JoinSeat, роль получает на AssignRoles,
// уничтожается (место пустеет) на LeaveMySeat вне Ongoing.
type Player struct {
	UID           string `json:"uid"`
	SeatNumber    int    `json:"seatNumber"`
	Role          RoleID `json:"role"`
	HasViewedRole bool   `json:"hasViewedRole"`
	DisplayName   string `json:"displayName"`
}

// Reveal - приватный результат проверки, привязанный к месту-цели.
type Reveal struct {
	Target  int    `json:"target"`
	Verdict string `json:"verdict"`
}

// Вердикты проверок провидцев
const (
	VerdictGood = "good"
	VerdictWolf = "wolf"

	// Вердикты confirm-шагов (статус ружья)
	VerdictGun   = "gun"
	VerdictNoGun = "no_gun"
)

// SeatVote - один голос волчьего совещания.
type SeatVote struct {
	Seat   int `json:"seat"`
	Target int `json:"target"` // NoSeat = пустой нож
}

// LearnedRole - результат обучения механического волка.
type LearnedRole struct {
	Seat int    `json:"seat"`
	Role RoleID `json:"role"`
}

// NightResults - агрегат текущей ночи. Явное значение, которым владеет
// машина состояний; резолверы получают его по ссылке через контекст,
// никакого глобального состояния. Обязан существовать всегда, когда
// status == Ongoing; его отсутствие там - ошибка программиста (паника),
// не пользовательская ошибка.
type NightResults struct {
	Votes            map[int]int  `json:"votes"` // seat -> target
	BlockedSeat      int          `json:"blockedSeat"`
	WolfKillDisabled bool         `json:"wolfKillDisabled"`
	GuardedSeat      int          `json:"guardedSeat"`
	SavedSeat        int          `json:"savedSeat"`
	PoisonedSeat     int          `json:"poisonedSeat"`
	CharmedSeat      int          `json:"charmedSeat"`
	DreamSeat        int          `json:"dreamSeat"`
	SwapSeats        []int        `json:"swapSeats,omitempty"` // ровно 0 или 2 места
	Learned          *LearnedRole `json:"learned,omitempty"`
	SeerCheckSeat    int          `json:"seerCheckSeat"`
}

// NewNightResults создает пустой агрегат ночи.
func NewNightResults() *NightResults {
	return &NightResults{
		Votes:         make(map[int]int),
		BlockedSeat:   NoSeat,
		GuardedSeat:   NoSeat,
		SavedSeat:     NoSeat,
		PoisonedSeat:  NoSeat,
		CharmedSeat:   NoSeat,
		DreamSeat:     NoSeat,
		SeerCheckSeat: NoSeat,
	}
}

// WitchContext - контекст шага ведьмы, вычисляется один раз на входе
// в шаг и очищается при продвижении ночи.
type WitchContext struct {
	KilledSeat int  `json:"killedSeat"` // NoSeat, если спасать некого
	CanSave    bool `json:"canSave"`
	CanPoison  bool `json:"canPoison"`
}

// WolfRobotContext - контекст шага механического волка.
type WolfRobotContext struct {
	CanLearn bool `json:"canLearn"`
}

// ActionInput - поданное игроком ночное действие.
// Поля-указатели различают "не подано" и "подано значение"
// (в том числе сентинел NoSeat у волков).
type ActionInput struct {
	Confirmed *bool `json:"confirmed,omitempty"`
	Target    *int  `json:"target,omitempty"`
	Targets   []int `json:"targets,omitempty"`

	// Подшаги compound-схемы ведьмы
	Save   *int `json:"save,omitempty"`
	Poison *int `json:"poison,omitempty"`
}

// RecordedAction - запись журнала принятых действий (аудит/реплей).
type RecordedAction struct {
	Seq   int         `json:"seq"`
	Seat  int         `json:"seat"`
	Role  RoleID      `json:"role"`
	Step  StepID      `json:"step"`
	Input ActionInput `json:"input"`
}

// GameState - каноническое состояние комнаты. Им монопольно владеет
// хост-процесс; все мутации идут через Reducer, клиенты держат
// read-only зеркало из broadcast-а.
type GameState struct {
	RoomCode string `json:"roomCode"`
	HostUID  string `json:"hostUid"`

	Status        GameStatus `json:"status"`
	TemplateRoles []RoleID   `json:"templateRoles"`

	// Players: ключи всегда ровно 0..len(TemplateRoles)-1,
	// пустое место - nil.
	Players map[int]*Player `json:"players"`

	// Позиция в плане ночи. -1 / StepNone до начала ночи.
	Plan             []StepID `json:"plan,omitempty"`
	CurrentStepIndex int      `json:"currentStepIndex"`
	CurrentStepID    StepID   `json:"currentStepId"`

	// Глобальный кооперативный замок: пока true, gate-цепочка
	// отклоняет все подачи действий.
	IsAudioPlaying bool `json:"isAudioPlaying"`

	Night        *NightResults     `json:"currentNightResults,omitempty"`
	WitchCtx     *WitchContext     `json:"witchContext,omitempty"`
	WolfRobotCtx *WolfRobotContext `json:"wolfRobotContext,omitempty"`

	// Последние результаты проверок, ключ - шаг.
	Reveals map[StepID]Reveal `json:"reveals,omitempty"`

	// Ключи попапов, которые клиенты обязаны подтвердить до продвижения ночи.
	PendingRevealAcks map[string]bool `json:"pendingRevealAcks,omitempty"`

	// Признание статуса ружья механическим волком (если выучил охотника).
	WolfRobotHunterStatusViewed bool `json:"wolfRobotHunterStatusViewed"`

	// Журнал принятых действий, только добавление.
	Actions []RecordedAction `json:"actions,omitempty"`

	// Итог последней ночи (после EndNight).
	Deaths []int `json:"deaths,omitempty"`

	// Места, которым хост открыл ночной обзор.
	NightReviewSeats []int `json:"nightReviewSeats,omitempty"`
}

// NewGameState создает комнату в статусе Unseated.
func NewGameState(roomCode, hostUID string, template []RoleID) *GameState {
	g := &GameState{
		RoomCode:         roomCode,
		HostUID:          hostUID,
		Status:           StatusUnseated,
		TemplateRoles:    template,
		Players:          make(map[int]*Player, len(template)),
		CurrentStepIndex: -1,
		CurrentStepID:    StepNone,
	}
	for i := range template {
		g.Players[i] = nil
	}
	return g
}

// MustNight возвращает агрегат ночи. Паника при status==Ongoing без
// агрегата: это инвариант, его нарушение маскировать нельзя.
func (g *GameState) MustNight() *NightResults {
	if g.Night == nil {
		panic(fmt.Sprintf("invariant violation: room %s is %s without night results", g.RoomCode, g.Status))
	}
	return g.Night
}

// PlayerAt возвращает игрока на месте (nil для пустого или неизвестного места).
func (g *GameState) PlayerAt(seat int) *Player {
	return g.Players[seat]
}

// SeatOfUID находит место игрока по uid, NoSeat если не сидит.
func (g *GameState) SeatOfUID(uid string) int {
	for seat, p := range g.Players {
		if p != nil && p.UID == uid {
			return seat
		}
	}
	return NoSeat
}

// SeatRoles возвращает сырую карту место -> роль (без учета обмена магика).
func (g *GameState) SeatRoles() map[int]RoleID {
	m := make(map[int]RoleID, len(g.Players))
	for seat, p := range g.Players {
		if p != nil {
			m[seat] = p.Role
		}
	}
	return m
}

// SeatOfRole находит первое место с данной ролью, NoSeat если роли нет за столом.
func (g *GameState) SeatOfRole(role RoleID) int {
	seat := NoSeat
	for s, p := range g.Players {
		if p != nil && p.Role == role && (seat == NoSeat || s < seat) {
			seat = s
		}
	}
	return seat
}

// TemplateHas true, если шаблон доски содержит роль.
func (g *GameState) TemplateHas(role RoleID) bool {
	for _, r := range g.TemplateRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AllSeatsFilled true, когда каждое место занято.
func (g *GameState) AllSeatsFilled() bool {
	if len(g.Players) != len(g.TemplateRoles) {
		return false
	}
	for _, p := range g.Players {
		if p == nil {
			return false
		}
	}
	return len(g.TemplateRoles) > 0
}

// AllViewedRole true, когда каждый сидящий посмотрел свою роль.
func (g *GameState) AllViewedRole() bool {
	for _, p := range g.Players {
		if p == nil || !p.HasViewedRole {
			return false
		}
	}
	return len(g.Players) > 0
}

// Clone делает глубокую копию состояния (для снапшотов и проекций).
// JSON-раундтрип медленнее ручного копирования, но состояние маленькое,
// а формат и так обязан сериализоваться без потерь.
func (g *GameState) Clone() *GameState {
	raw, err := json.Marshal(g)
	if err != nil {
		panic(fmt.Sprintf("game state not serializable: %v", err))
	}
	var out GameState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("game state roundtrip failed: %v", err))
	}
	return &out
}
