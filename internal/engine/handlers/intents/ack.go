package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// HandleAckReveal - клиент подтвердил показ приватного результата,
// снимая back-pressure с продвижения ночи.
func HandleAckReveal(ctx handlers.Context, p api.AckRevealPayload) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if ctx.State.Status != domain.StatusOngoing {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, ctx.State.CurrentStepID)
	}
	if !ctx.State.PendingRevealAcks[p.Key] {
		return handlers.RejectBroadcast(domain.ReasonUnknownAck, domain.NoSeat, ctx.State.CurrentStepID)
	}
	return handlers.Accept(domain.StateAction{
		Type:   domain.ActionClearRevealAck,
		AckKey: p.Key,
	})
}

// HandleSetWolfRobotHunterStatusViewed - клиент механического волка
// увидел статус ружья выученного охотника; шлагбаум продвижения снимается.
func HandleSetWolfRobotHunterStatusViewed(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if ctx.State.Status != domain.StatusOngoing {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, ctx.State.CurrentStepID)
	}
	return handlers.Accept(
		domain.StateAction{Type: domain.ActionSetWolfRobotHunterStatusViewed, Viewed: true},
		domain.StateAction{Type: domain.ActionClearRevealAck, AckKey: domain.AckKeyWolfRobotHunterStatus},
	)
}

// HandleSetAudioPlaying - хост включает/выключает озвучку. Пока флаг
// поднят, gate-цепочка отклоняет любые подачи действий.
func HandleSetAudioPlaying(ctx handlers.Context, p api.AudioPayload) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	return handlers.Accept(domain.StateAction{
		Type:  domain.ActionSetAudioPlaying,
		Audio: p.Playing,
	})
}
