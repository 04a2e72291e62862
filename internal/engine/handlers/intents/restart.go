package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// HandleRestartGame - хост начинает новую партию после Ended.
// Места сохраняются, роли и результаты ночи очищаются.
func HandleRestartGame(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	if ctx.State.Status != domain.StatusEnded {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, domain.StepNone)
	}
	return handlers.Accept(domain.StateAction{Type: domain.ActionRestartGame})
}

// HandleShareNightReview - хост открывает ночной обзор перечисленным местам.
func HandleShareNightReview(ctx handlers.Context, p api.ShareNightReviewPayload) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	if ctx.State.Status != domain.StatusEnded {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, domain.StepNone)
	}
	return handlers.Accept(domain.StateAction{
		Type:  domain.ActionSetNightReviewAllowedSeats,
		Seats: p.Seats,
	})
}
