package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// convertInput переводит транспортный ActionInput в доменный.
func convertInput(in api.ActionInput) domain.ActionInput {
	return domain.ActionInput{
		Confirmed: in.Confirmed,
		Target:    in.Target,
		Targets:   in.Targets,
		Save:      in.Save,
		Poison:    in.Poison,
	}
}

// HandleSubmitAction - подача ночного действия от имени роли.
// Вся легальность решается конвейером: гейты -> гард кошмара -> резолвер.
func HandleSubmitAction(ctx handlers.Context, p api.SubmitActionPayload) handlers.Outcome {
	return handlers.RunSubmitPipeline(ctx, handlers.SubmitRequest{
		Seat:        p.Seat,
		ClaimedRole: domain.ParseRole(p.Role),
		Input:       convertInput(p.Action),
	})
}
