package handlers

import (
	"encoding/json"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/systems"
)

// Context передает хендлеру состояние комнаты.
// State read-only для хендлера: мутирует его только Reducer.
type Context struct {
	// State - каноническое состояние комнаты, nil если комнаты нет.
	State *domain.GameState

	// UID отправителя и признак "отправитель - хост комнаты",
	// навешанные транспортом.
	UID          string
	SenderIsHost bool

	// HostProcess true, когда движок исполняется в авторитетном
	// хост-процессе. Зеркальные клиенты бизнес-логику не исполняют.
	HostProcess bool

	// WolfTimerActive - тикает ли сейчас отсчет волчьего голосования
	// (таймером владеет хост-цикл, хендлер его только читает).
	WolfTimerActive bool

	// Coin - источник случайности резолверов (пьяный провидец).
	Coin func() float64

	// Shuffle переставляет n элементов (раздача ролей).
	Shuffle func(n int, swap func(i, j int))
}

// Effect - директива побочного эффекта. Хендлер только называет эффект,
// исполняет его (сеть, диск) хост-цикл.
type Effect uint8

const (
	EffectBroadcastState Effect = iota + 1
	EffectSaveState
)

func (e Effect) String() string {
	switch e {
	case EffectBroadcastState:
		return "BROADCAST_STATE"
	case EffectSaveState:
		return "SAVE_STATE"
	}
	return "UNKNOWN"
}

// Outcome - результат обработки одного намерения: вердикт, упорядоченный
// список дельт состояния и директивы эффектов. Хендлер НЕ мутирует
// состояние и НЕ делает I/O - он возвращает данные.
type Outcome struct {
	Success bool
	Reason  string
	Actions []domain.StateAction
	Effects []Effect

	// Timer - решение по таймеру волчьего голосования (только SubmitWolfVote).
	Timer systems.TimerDecision
}

// HandlerFunc - контракт для любого намерения (JOIN_SEAT, SUBMIT_ACTION, ...).
type HandlerFunc func(ctx Context, payload json.RawMessage) Outcome

// Reject - отказ без дельт (комнаты нет или нечего рассылать).
func Reject(reason string) Outcome {
	return Outcome{Success: false, Reason: reason}
}

// RejectBroadcast - отказ с ActionRejected в списке дельт: отказ уезжает
// в broadcast, чтобы UI подавшего не завис в "ожидании".
func RejectBroadcast(reason string, seat int, step domain.StepID) Outcome {
	return Outcome{
		Success: false,
		Reason:  reason,
		Actions: []domain.StateAction{{
			Type:   domain.ActionRejected,
			Reason: reason,
			Seat:   seat,
			Step:   step,
		}},
		Effects: []Effect{EffectBroadcastState},
	}
}

// Accept - успех с рассылкой и сохранением состояния.
func Accept(actions ...domain.StateAction) Outcome {
	return Outcome{
		Success: true,
		Actions: actions,
		Effects: []Effect{EffectBroadcastState, EffectSaveState},
	}
}
