package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// HandleViewedRole - игрок посмотрел выданную роль. Своя короткая
// цепочка гейтов, независимая от конвейера ночных действий.
// Продвижение Assigned -> Ready (когда посмотрели все) - зона
// ответственности Reducer-а, не хендлера.
func HandleViewedRole(ctx handlers.Context, p api.ViewedRolePayload) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if ctx.State.Status != domain.StatusAssigned {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, p.Seat, domain.StepNone)
	}
	player := ctx.State.PlayerAt(p.Seat)
	if player == nil {
		return handlers.RejectBroadcast(domain.ReasonNotSeated, p.Seat, domain.StepNone)
	}
	// Владение местом: подтвердить просмотр можно только своей роли
	if player.UID != ctx.UID {
		return handlers.RejectBroadcast(domain.ReasonNotYourSeat, p.Seat, domain.StepNone)
	}

	return handlers.Accept(domain.StateAction{
		Type: domain.ActionPlayerViewedRole,
		Seat: p.Seat,
	})
}
