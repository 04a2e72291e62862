package engine

import (
	"fmt"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
)

// Apply применяет одну атомарную дельту к каноническому состоянию,
// мутируя ровно те поля, которые называет тег дельты. Хендлеры состояние
// не трогают - все мутации проходят здесь, последовательно, в порядке
// списка дельт. Производные продвижения статуса (Assigned -> Ready,
// заполнение/опустение мест) - тоже зона ответственности Reducer-а.
func Apply(g *domain.GameState, a domain.StateAction) *domain.GameState {
	switch a.Type {

	case domain.ActionRejected:
		// Маркер для broadcast-а; полей состояния не называет.

	case domain.ActionRecordAction:
		if a.Record == nil {
			panic("invariant violation: RecordAction without record")
		}
		rec := *a.Record
		rec.Seq = len(g.Actions) + 1
		g.Actions = append(g.Actions, rec)

	case domain.ActionApplyResolverResult:
		applyResolverResult(g, a)

	case domain.ActionAddRevealAck:
		if g.PendingRevealAcks == nil {
			g.PendingRevealAcks = make(map[string]bool)
		}
		g.PendingRevealAcks[a.AckKey] = true

	case domain.ActionClearRevealAck:
		delete(g.PendingRevealAcks, a.AckKey)

	case domain.ActionSetWitchContext:
		g.WitchCtx = a.WitchCtx

	case domain.ActionSetWolfRobotContext:
		g.WolfRobotCtx = a.RobotCtx

	case domain.ActionStartNight:
		if len(a.Plan) == 0 {
			panic("invariant violation: StartNight with empty plan")
		}
		g.Status = domain.StatusOngoing
		g.Plan = a.Plan
		g.CurrentStepIndex = 0
		g.CurrentStepID = a.Plan[0]
		g.Night = domain.NewNightResults()
		g.Reveals = make(map[domain.StepID]domain.Reveal)
		g.PendingRevealAcks = make(map[string]bool)
		g.WitchCtx = nil
		g.WolfRobotCtx = nil
		g.Deaths = nil
		g.NightReviewSeats = nil
		g.WolfRobotHunterStatusViewed = false

	case domain.ActionAdvanceStep:
		g.CurrentStepIndex++
		g.CurrentStepID = a.Step
		// Шаго-скоупные контексты живут ровно один шаг
		g.WitchCtx = nil
		g.WolfRobotCtx = nil

	case domain.ActionEndNight:
		g.Status = domain.StatusEnded
		g.CurrentStepIndex = -1
		g.CurrentStepID = domain.StepNone
		g.Deaths = a.Deaths
		if g.Deaths == nil {
			g.Deaths = []int{}
		}
		g.WitchCtx = nil
		g.WolfRobotCtx = nil

	case domain.ActionAssignRoles:
		for seat, role := range a.Assignments {
			p := g.Players[seat]
			if p == nil {
				panic(fmt.Sprintf("invariant violation: assigning role to empty seat %d", seat))
			}
			p.Role = role
			p.HasViewedRole = false
		}
		g.Status = domain.StatusAssigned

	case domain.ActionRestartGame:
		g.Night = nil
		g.Plan = nil
		g.CurrentStepIndex = -1
		g.CurrentStepID = domain.StepNone
		g.WitchCtx = nil
		g.WolfRobotCtx = nil
		g.Reveals = nil
		g.PendingRevealAcks = nil
		g.Actions = nil
		g.Deaths = nil
		g.NightReviewSeats = nil
		g.IsAudioPlaying = false
		g.WolfRobotHunterStatusViewed = false
		for _, p := range g.Players {
			if p != nil {
				p.Role = domain.RoleUnknown
				p.HasViewedRole = false
			}
		}
		if g.AllSeatsFilled() {
			g.Status = domain.StatusSeated
		} else {
			g.Status = domain.StatusUnseated
		}

	case domain.ActionUpdateTemplate:
		g.TemplateRoles = a.Template
		old := g.Players
		g.Players = make(map[int]*domain.Player, len(a.Template))
		for i := range a.Template {
			g.Players[i] = old[i] // сидящие в диапазоне сохраняются
		}
		if g.AllSeatsFilled() {
			g.Status = domain.StatusSeated
		} else {
			g.Status = domain.StatusUnseated
		}

	case domain.ActionPlayerJoin:
		g.Players[a.Seat] = &domain.Player{
			UID:         a.UID,
			SeatNumber:  a.Seat,
			DisplayName: a.DisplayName,
		}
		if g.Status == domain.StatusUnseated && g.AllSeatsFilled() {
			g.Status = domain.StatusSeated
		}

	case domain.ActionPlayerLeave:
		g.Players[a.Seat] = nil
		// Опустевшая доска откатывает любое предигровое продвижение
		switch g.Status {
		case domain.StatusSeated, domain.StatusAssigned, domain.StatusReady:
			g.Status = domain.StatusUnseated
		}

	case domain.ActionPlayerViewedRole:
		p := g.Players[a.Seat]
		if p == nil {
			panic(fmt.Sprintf("invariant violation: viewed role on empty seat %d", a.Seat))
		}
		p.HasViewedRole = true
		if g.Status == domain.StatusAssigned && g.AllViewedRole() {
			g.Status = domain.StatusReady
		}

	case domain.ActionSetWolfRobotHunterStatusViewed:
		g.WolfRobotHunterStatusViewed = a.Viewed

	case domain.ActionSetNightReviewAllowedSeats:
		g.NightReviewSeats = a.Seats

	case domain.ActionSetAudioPlaying:
		g.IsAudioPlaying = a.Audio

	default:
		panic(fmt.Sprintf("invariant violation: unknown state action %d", a.Type))
	}

	return g
}

// ApplyAll применяет упорядоченный список дельт.
func ApplyAll(g *domain.GameState, actions []domain.StateAction) *domain.GameState {
	for _, a := range actions {
		g = Apply(g, a)
	}
	return g
}

// applyResolverResult сливает частичное обновление резолвера в агрегат
// ночи и фиксирует приватный результат шага.
func applyResolverResult(g *domain.GameState, a domain.StateAction) {
	night := g.MustNight()

	if upd := a.Updates; upd != nil {
		if upd.BlockedSeat != nil {
			night.BlockedSeat = *upd.BlockedSeat
		}
		if upd.WolfKillDisabled != nil {
			night.WolfKillDisabled = *upd.WolfKillDisabled
		}
		if upd.Vote != nil {
			night.Votes[upd.Vote.Seat] = upd.Vote.Target
		}
		if upd.GuardedSeat != nil {
			night.GuardedSeat = *upd.GuardedSeat
		}
		if upd.SavedSeat != nil {
			night.SavedSeat = *upd.SavedSeat
		}
		if upd.PoisonedSeat != nil {
			night.PoisonedSeat = *upd.PoisonedSeat
		}
		if upd.CharmedSeat != nil {
			night.CharmedSeat = *upd.CharmedSeat
		}
		if upd.DreamSeat != nil {
			night.DreamSeat = *upd.DreamSeat
		}
		if len(upd.SwapSeats) == 2 {
			night.SwapSeats = []int{upd.SwapSeats[0], upd.SwapSeats[1]}
		}
		if upd.Learned != nil {
			night.Learned = upd.Learned
		}
		if upd.SeerCheckSeat != nil {
			night.SeerCheckSeat = *upd.SeerCheckSeat
		}
	}

	if a.Reveal != nil {
		if g.Reveals == nil {
			g.Reveals = make(map[domain.StepID]domain.Reveal)
		}
		g.Reveals[a.Step] = *a.Reveal
	}
}
