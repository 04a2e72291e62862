package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// HandleSubmitWolfVote сводится к общему конвейеру подачи: разрешаем
// настоящую роль голосующего, прогоняем один дополнительный гейт
// совещания (not_wolf_participant) и делегируемся в путь SUBMIT_ACTION.
// Легаси-сентинел "-1" переводится в "цели нет" (пустой нож) до
// делегирования.
func HandleSubmitWolfVote(ctx handlers.Context, p api.WolfVotePayload) handlers.Outcome {
	if !ctx.HostProcess {
		return handlers.Reject(domain.ReasonHostOnly)
	}
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}

	realRole := domain.RoleUnknown
	if player := ctx.State.PlayerAt(p.Seat); player != nil {
		realRole = player.Role
	}

	// Гейт совещания: место обязано сидеть за волчьим столом
	if realRole != domain.RoleUnknown && !domain.IsWolfMeetingParticipant(realRole) {
		return handlers.RejectBroadcast(domain.ReasonNotWolfParticipant, p.Seat, ctx.State.CurrentStepID)
	}

	input := domain.ActionInput{}
	if p.Target != domain.NoSeat {
		target := p.Target
		input.Target = &target
	}

	return handlers.RunSubmitPipeline(ctx, handlers.SubmitRequest{
		Seat:        p.Seat,
		ClaimedRole: realRole,
		Input:       input,
	})
}
