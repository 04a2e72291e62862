package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// HandleJoinSeat - занять место. Разрешено до раздачи ролей;
// пересадка уже сидящего игрока оформляется как Leave + Join.
func HandleJoinSeat(ctx handlers.Context, p api.JoinSeatPayload) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	state := ctx.State
	if state.Status != domain.StatusUnseated && state.Status != domain.StatusSeated {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, p.Seat, domain.StepNone)
	}
	if p.Seat < 0 || p.Seat >= len(state.TemplateRoles) {
		return handlers.RejectBroadcast(domain.ReasonInvalidSeat, p.Seat, domain.StepNone)
	}
	if occupant := state.PlayerAt(p.Seat); occupant != nil {
		if occupant.UID == ctx.UID {
			// Повторный заход на свое же место - идемпотентный успех
			return handlers.Accept()
		}
		return handlers.RejectBroadcast(domain.ReasonSeatTaken, p.Seat, domain.StepNone)
	}

	var actions []domain.StateAction
	if old := state.SeatOfUID(ctx.UID); old != domain.NoSeat {
		actions = append(actions, domain.StateAction{Type: domain.ActionPlayerLeave, Seat: old})
	}
	actions = append(actions, domain.StateAction{
		Type:        domain.ActionPlayerJoin,
		Seat:        p.Seat,
		UID:         ctx.UID,
		DisplayName: p.DisplayName,
	})
	return handlers.Accept(actions...)
}

// HandleLeaveMySeat - освободить свое место. Во время Ongoing запрещено.
func HandleLeaveMySeat(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if ctx.State.Status == domain.StatusOngoing {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, domain.StepNone)
	}
	seat := ctx.State.SeatOfUID(ctx.UID)
	if seat == domain.NoSeat {
		return handlers.RejectBroadcast(domain.ReasonNotSeated, domain.NoSeat, domain.StepNone)
	}
	return handlers.Accept(domain.StateAction{Type: domain.ActionPlayerLeave, Seat: seat})
}
