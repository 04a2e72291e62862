package handlers

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/systems"
)

// RunSubmitPipeline - общий путь подачи ночного действия:
// цепочка гейтов -> гард кошмара -> резолвер -> дельты состояния.
func RunSubmitPipeline(ctx Context, req SubmitRequest) Outcome {
	schema, reason := RunSubmitGates(ctx, req)
	if reason != "" {
		// До гейта no_state включительно рассылать нечего
		if ctx.State == nil || reason == domain.ReasonHostOnly {
			return Reject(reason)
		}
		return RejectBroadcast(reason, req.Seat, ctx.State.CurrentStepID)
	}

	state := ctx.State
	step := state.CurrentStepID
	night := state.MustNight()

	if reason := NightmareGuard(schema, night.BlockedSeat, req.Seat, req.Input); reason != "" {
		return RejectBroadcast(reason, req.Seat, step)
	}

	resolver := systems.Registry[step]
	res := resolver(buildResolverContext(ctx, req), req.Input)
	if !res.Valid {
		return RejectBroadcast(res.Reason, req.Seat, step)
	}

	actions := []domain.StateAction{
		{
			Type: domain.ActionRecordAction,
			Record: &domain.RecordedAction{
				Seat:  req.Seat,
				Role:  req.ClaimedRole,
				Step:  step,
				Input: req.Input,
			},
		},
		{
			Type:    domain.ActionApplyResolverResult,
			Step:    step,
			Seat:    req.Seat,
			Updates: res.Updates,
			Reveal:  res.Reveal,
		},
	}

	// Приватный результат требует подтверждения клиентом до продвижения ночи
	if schema.Reveal && res.Reveal != nil {
		actions = append(actions, domain.StateAction{
			Type:   domain.ActionAddRevealAck,
			AckKey: step.String(),
		})
	}

	// Механический волк выучил охотника: открывается дополнительный
	// шлагбаум - ночь стоит, пока клиент не увидит статус ружья.
	if step == domain.StepWolfRobotLearn && res.Updates != nil &&
		res.Updates.Learned != nil && res.Updates.Learned.Role == domain.RoleHunter {
		actions = append(actions, domain.StateAction{
			Type:   domain.ActionAddRevealAck,
			AckKey: domain.AckKeyWolfRobotHunterStatus,
		})
	}

	out := Accept(actions...)

	// Решение по таймеру волчьего голосования: считаем полноту так,
	// будто этот голос уже лег в таблицу (дельты применит Reducer позже).
	if step == domain.StepWolfKill {
		allVoted := systems.IsWolfVoteAllCompleteAssuming(state, req.Seat)
		out.Timer = systems.DecideWolfVoteTimer(allVoted, ctx.WolfTimerActive)
	}

	return out
}

// buildResolverContext собирает read-only контекст резолвера из состояния.
func buildResolverContext(ctx Context, req SubmitRequest) systems.Context {
	state := ctx.State
	raw := state.SeatRoles()
	night := state.MustNight()

	coin := ctx.Coin
	if coin == nil {
		panic("invariant violation: handler context has no coin source")
	}

	return systems.Context{
		ActorSeat: req.Seat,
		ActorRole: req.ClaimedRole,
		SeatCount: len(state.TemplateRoles),
		RoleAt: func(seat int) domain.RoleID {
			return systems.EffectiveRole(raw, night.SwapSeats, seat)
		},
		Night:    night,
		WitchCtx: state.WitchCtx,
		RobotCtx: state.WolfRobotCtx,
		IsNight1: true,
		Coin:     coin,
	}
}
