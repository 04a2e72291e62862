package engine

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/core"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/systems"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
)

// WolfVoteCountdown - длина отсчета после полного волчьего голосования;
// каждый принятый голос взводит его заново с нуля.
const WolfVoteCountdown = 5 * time.Second

// envelope - намерение с каналом синхронного ответа.
// reply == nil для внутренних сигналов (таймер).
type envelope struct {
	intent domain.Intent
	reply  chan handlers.Outcome
}

// Room - один изолированный игровой стол. Канонческим состоянием
// монопольно владеет горутина run(): все мутации идут через один
// последовательный конвейер, внутренней конкуренции нет.
type Room struct {
	Code    string
	hostUID string

	state   *domain.GameState
	service *GameService

	// Hub рассылает проекции состояния read-only зеркалам.
	Hub *core.Broadcaster

	intents   chan envelope
	snapshots chan chan api.StateView
	quit      chan struct{}

	rng *rand.Rand

	// Таймер волчьего голосования. Флаг и таймер трогает только
	// горутина цикла; колбек таймера лишь сигналит намерение обратно
	// в тот же конвейер.
	wolfTimer       *time.Timer
	wolfTimerActive bool
}

func newRoom(code, hostUID string, template []domain.RoleID, service *GameService) *Room {
	return &Room{
		Code:      code,
		hostUID:   hostUID,
		state:     domain.NewGameState(code, hostUID, template),
		service:   service,
		Hub:       core.NewBroadcaster(),
		intents:   make(chan envelope, 64),
		snapshots: make(chan chan api.StateView),
		quit:      make(chan struct{}),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Submit проводит намерение через конвейер комнаты и синхронно
// возвращает исход: намерение либо принято (с дельтами), либо
// отклонено; "в полете" ничего не остается.
//
// Канал intents буферизован, поэтому постановка в очередь может
// успеть и в остановленную комнату - ответа тогда не будет никогда.
// Ожидание ответа обязано слушать quit наравне с reply.
func (r *Room) Submit(intent domain.Intent) handlers.Outcome {
	reply := make(chan handlers.Outcome, 1)
	select {
	case r.intents <- envelope{intent: intent, reply: reply}:
	case <-r.quit:
		return handlers.Reject(domain.ReasonNoState)
	}
	select {
	case out := <-reply:
		return out
	case <-r.quit:
		return handlers.Reject(domain.ReasonNoState)
	}
}

// Snapshot - проекция текущего состояния для только что подключившегося
// зеркала. Снимок берется через цикл комнаты, а не напрямую из чужой горутины.
func (r *Room) Snapshot() api.StateView {
	reply := make(chan api.StateView, 1)
	select {
	case r.snapshots <- reply:
		return <-reply
	case <-r.quit:
		return api.StateView{}
	}
}

func (r *Room) stop() {
	close(r.quit)
}

// run - цикл комнаты: единственный писатель канонического состояния.
func (r *Room) run() {
	log := logger.Log.WithField("room", r.Code)
	log.Info("Room loop started")

	for {
		select {
		case env := <-r.intents:
			out := r.process(env.intent)
			if env.reply != nil {
				env.reply <- out
			}
		case reply := <-r.snapshots:
			reply <- BuildStateView(r.state)
		case <-r.quit:
			r.clearWolfTimer()
			log.Info("Room loop stopped")
			return
		}
	}
}

// process - конвейер одного намерения: хендлер -> Reducer -> хуки входа
// в шаг -> таймер -> директивы эффектов.
func (r *Room) process(intent domain.Intent) handlers.Outcome {
	handler, ok := r.service.handlers[intent.Type]
	if !ok {
		return handlers.Reject(domain.ReasonUnknownIntent)
	}

	ctx := handlers.Context{
		State:           r.state,
		UID:             intent.UID,
		SenderIsHost:    intent.IsHost || intent.UID == r.state.HostUID,
		HostProcess:     true,
		WolfTimerActive: r.wolfTimerActive,
		Coin:            r.rng.Float64,
		Shuffle:         r.rng.Shuffle,
	}

	stepBefore := r.state.CurrentStepID
	out := handler(ctx, intent.Payload)

	r.state = ApplyAll(r.state, out.Actions)

	// Вход в новый шаг: одноразовые шаго-скоупные контексты
	if r.state.Status == domain.StatusOngoing && r.state.CurrentStepID != stepBefore {
		out.Actions = append(out.Actions, r.stepEntryActions()...)
	}

	// Таймер волчьего голосования
	switch out.Timer {
	case systems.TimerStart:
		r.armWolfTimer()
	case systems.TimerClear:
		r.clearWolfTimer()
	}
	if r.state.CurrentStepID != stepBefore {
		// Шаг сменился - старый отсчет больше ничего не значит
		r.clearWolfTimer()
	}

	r.executeEffects(intent, out)
	return out
}

// stepEntryActions вычисляет и сразу применяет контексты входа в шаг
// (ведьма, механический волк). Контекст считается один раз: повторный
// вход в тот же шаг - no-op.
func (r *Room) stepEntryActions() []domain.StateAction {
	var actions []domain.StateAction
	if act := systems.MaybeCreateWitchContextAction(r.state); act != nil {
		actions = append(actions, *act)
	}
	if act := systems.MaybeCreateWolfRobotContextAction(r.state); act != nil {
		actions = append(actions, *act)
	}
	r.state = ApplyAll(r.state, actions)
	return actions
}

func (r *Room) executeEffects(intent domain.Intent, out handlers.Outcome) {
	log := logger.Log.WithFields(logrus.Fields{
		"room":   r.Code,
		"intent": intent.Type.String(),
	})

	for _, effect := range out.Effects {
		switch effect {
		case handlers.EffectBroadcastState:
			r.Hub.Broadcast(BuildStateView(r.state))
		case handlers.EffectSaveState:
			r.saveSnapshot(log)
		}
	}

	// Журнал принятых намерений - только успешные подачи
	if out.Success && r.service.store != nil {
		if err := r.service.store.AppendIntent(r.Code, intent.UID, intent.Type.String(), intent.Payload); err != nil {
			log.WithError(err).Warn("Failed to append intent to journal")
		}
	}
}

func (r *Room) saveSnapshot(log *logrus.Entry) {
	if r.service.store == nil {
		return
	}
	raw, err := json.Marshal(r.state)
	if err != nil {
		log.WithError(err).Error("Failed to marshal state for snapshot")
		return
	}
	if err := r.service.store.SaveSnapshot(r.Code, raw); err != nil {
		log.WithError(err).Warn("Failed to save snapshot")
	}
}

// armWolfTimer взводит отсчет заново (без накопления).
func (r *Room) armWolfTimer() {
	if r.wolfTimer != nil {
		r.wolfTimer.Stop()
	}
	r.wolfTimerActive = true
	r.wolfTimer = time.AfterFunc(WolfVoteCountdown, func() {
		// Сигналим продвижение обратно в конвейер от имени хоста.
		// Ответ никому не нужен.
		select {
		case r.intents <- envelope{intent: domain.Intent{
			Type:   domain.IntentAdvanceNight,
			UID:    r.hostUID,
			IsHost: true,
		}}:
		case <-r.quit:
		}
	})
}

func (r *Room) clearWolfTimer() {
	if r.wolfTimer != nil {
		r.wolfTimer.Stop()
		r.wolfTimer = nil
	}
	r.wolfTimerActive = false
}
