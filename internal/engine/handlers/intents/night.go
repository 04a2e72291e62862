package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/systems"
)

// HandleStartNight - хост начинает ночь. План строится из мастер-таблицы;
// пустой план (ночных ролей нет) не стопорит игру на шаге 0, а сразу
// завершает ночь пустым списком смертей.
func HandleStartNight(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	if ctx.State.Status != domain.StatusReady {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, domain.StepNone)
	}

	plan := domain.BuildNightPlan(ctx.State.TemplateRoles)
	if len(plan) == 0 {
		return handlers.Accept(domain.StateAction{
			Type:   domain.ActionEndNight,
			Deaths: []int{},
		})
	}
	return handlers.Accept(domain.StateAction{
		Type: domain.ActionStartNight,
		Plan: plan,
	})
}

// HandleAdvanceNight - хост двигает ночь на следующий шаг.
// Продвижение стоит, пока висят неподтвержденные приватные результаты
// (back-pressure попапов, включая статус ружья механического волка).
// Выход за конец плана завершает ночь расчетом смертей.
func HandleAdvanceNight(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	state := ctx.State
	if state.Status != domain.StatusOngoing {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, state.CurrentStepID)
	}
	if len(state.PendingRevealAcks) > 0 {
		return handlers.RejectBroadcast(domain.ReasonPendingRevealAck, domain.NoSeat, state.CurrentStepID)
	}

	next := state.CurrentStepIndex + 1
	if next >= len(state.Plan) {
		return endNightOutcome(state)
	}
	return handlers.Accept(domain.StateAction{
		Type: domain.ActionAdvanceStep,
		Step: state.Plan[next],
	})
}

// HandleEndNight - принудительное завершение ночи хостом.
func HandleEndNight(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	if ctx.State.Status != domain.StatusOngoing {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, ctx.State.CurrentStepID)
	}
	return endNightOutcome(ctx.State)
}

func endNightOutcome(state *domain.GameState) handlers.Outcome {
	deaths := systems.CalculateDeaths(state.MustNight(), state.SeatRoles())
	return handlers.Accept(domain.StateAction{
		Type:   domain.ActionEndNight,
		Deaths: deaths,
	})
}
