package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/boards"
)

// ParseTemplate переводит список имен ролей или имя пресета в шаблон доски.
func ParseTemplate(names []string, preset string) ([]domain.RoleID, bool) {
	if len(names) == 0 && preset != "" {
		var ok bool
		names, ok = boards.Preset(preset)
		if !ok {
			return nil, false
		}
	}
	if len(names) == 0 {
		return nil, false
	}
	template := make([]domain.RoleID, 0, len(names))
	for _, name := range names {
		role := domain.ParseRole(name)
		if role == domain.RoleUnknown {
			return nil, false
		}
		template = append(template, role)
	}
	return template, true
}

// HandleUpdateTemplate - хост меняет шаблон доски. Допустимо только до
// раздачи ролей; сидящие игроки, чьи места остаются в диапазоне,
// сохраняются (этим занимается Reducer).
func HandleUpdateTemplate(ctx handlers.Context, p api.UpdateTemplatePayload) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	if ctx.State.Status != domain.StatusUnseated && ctx.State.Status != domain.StatusSeated {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, domain.StepNone)
	}
	template, ok := ParseTemplate(p.Roles, p.Preset)
	if !ok {
		return handlers.RejectBroadcast(domain.ReasonInvalidTemplate, domain.NoSeat, domain.StepNone)
	}
	return handlers.Accept(domain.StateAction{
		Type:     domain.ActionUpdateTemplate,
		Template: template,
	})
}
