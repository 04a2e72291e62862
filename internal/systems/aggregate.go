package systems

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
)

// IsWolfVoteAllComplete: true, когда каждый сидящий участник волчьего
// совещания с известной ролью отметился в таблице голосов. Пустой нож
// (NoSeat) - валидный голос. Участник без роли - fail closed (false):
// в корректном Ongoing-состоянии роль есть у каждого места, её
// отсутствие сигнализирует порчу, а не краевой случай.
func IsWolfVoteAllComplete(g *domain.GameState) bool {
	night := g.MustNight()
	voters := 0
	for seat, p := range g.Players {
		if p == nil {
			continue
		}
		if p.Role == domain.RoleUnknown {
			return false
		}
		if !domain.IsWolfMeetingParticipant(p.Role) {
			continue
		}
		voters++
		if _, voted := night.Votes[seat]; !voted {
			return false
		}
	}
	return voters > 0
}

// IsWolfVoteAllCompleteAssuming - то же, но место assumeSeat считается
// проголосовавшим (для решения по таймеру до применения дельт Reducer-ом).
func IsWolfVoteAllCompleteAssuming(g *domain.GameState, assumeSeat int) bool {
	night := g.MustNight()
	voters := 0
	for seat, p := range g.Players {
		if p == nil {
			continue
		}
		if p.Role == domain.RoleUnknown {
			return false
		}
		if !domain.IsWolfMeetingParticipant(p.Role) {
			continue
		}
		voters++
		if seat == assumeSeat {
			continue
		}
		if _, voted := night.Votes[seat]; !voted {
			return false
		}
	}
	return voters > 0
}

// TimerDecision - что хост-цикл должен сделать с таймером волчьего голосования.
type TimerDecision uint8

const (
	TimerNoop TimerDecision = iota
	TimerStart
	TimerClear
)

// DecideWolfVoteTimer: каждый принятый голос взводит отсчет заново с нуля
// (без накопления), даже если содержание голоса не изменилось;
// неполное голосование гасит активный отсчет.
func DecideWolfVoteTimer(allVoted, timerActive bool) TimerDecision {
	switch {
	case allVoted:
		return TimerStart
	case timerActive:
		return TimerClear
	default:
		return TimerNoop
	}
}

// ComputeWitchContext - производный контекст шага ведьмы, вычисляется
// один раз на входе в шаг. killedSeat = NoSeat, пока нож реально не
// упал (не отключен, цель конкретна) И цель - не сама ведьма.
// Защитно: шаблон объявляет ведьму, но место её не держит - canSave
// принудительно false вне зависимости от ножа.
// canPoison пока всегда true: учета расхода зелий в рамках одной ночи нет.
func ComputeWitchContext(g *domain.GameState) *domain.WitchContext {
	night := g.MustNight()
	witchSeat := g.SeatOfRole(domain.RoleWitch)

	killed := WolfKillTarget(night)
	if killed == witchSeat {
		killed = domain.NoSeat
	}

	canSave := killed != domain.NoSeat
	if witchSeat == domain.NoSeat {
		canSave = false
	}

	return &domain.WitchContext{
		KilledSeat: killed,
		CanSave:    canSave,
		CanPoison:  true,
	}
}

// MaybeCreateWitchContextAction выдает SetWitchContext только если:
// текущий шаг - ровно шаг ведьмы, контекст ещё не установлен (повторный
// вход в тот же шаг идемпотентен) и шаблон действительно содержит ведьму.
func MaybeCreateWitchContextAction(g *domain.GameState) *domain.StateAction {
	if g.CurrentStepID != domain.StepWitchAction {
		return nil
	}
	if g.WitchCtx != nil {
		return nil
	}
	if !g.TemplateHas(domain.RoleWitch) {
		return nil
	}
	return &domain.StateAction{Type: domain.ActionSetWitchContext, WitchCtx: ComputeWitchContext(g)}
}

// ComputeWolfRobotContext - производный контекст шага механического волка.
func ComputeWolfRobotContext(g *domain.GameState) *domain.WolfRobotContext {
	return &domain.WolfRobotContext{
		CanLearn: g.SeatOfRole(domain.RoleWolfRobot) != domain.NoSeat,
	}
}

// MaybeCreateWolfRobotContextAction - зеркало логики ведьминого контекста
// для шага механического волка.
func MaybeCreateWolfRobotContextAction(g *domain.GameState) *domain.StateAction {
	if g.CurrentStepID != domain.StepWolfRobotLearn {
		return nil
	}
	if g.WolfRobotCtx != nil {
		return nil
	}
	if !g.TemplateHas(domain.RoleWolfRobot) {
		return nil
	}
	return &domain.StateAction{Type: domain.ActionSetWolfRobotContext, RobotCtx: ComputeWolfRobotContext(g)}
}
