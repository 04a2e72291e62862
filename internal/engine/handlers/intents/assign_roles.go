package intents

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
)

// HandleAssignRoles - хост раздает роли. Шаблон тасуется источником
// случайности хост-цикла, результат фиксируется одной дельтой
// AssignRoles: место -> роль.
func HandleAssignRoles(ctx handlers.Context) handlers.Outcome {
	if ctx.State == nil {
		return handlers.Reject(domain.ReasonNoState)
	}
	if !ctx.SenderIsHost {
		return handlers.RejectBroadcast(domain.ReasonHostOnly, domain.NoSeat, domain.StepNone)
	}
	if ctx.State.Status != domain.StatusSeated {
		return handlers.RejectBroadcast(domain.ReasonInvalidStatus, domain.NoSeat, domain.StepNone)
	}
	if ctx.Shuffle == nil {
		panic("invariant violation: handler context has no shuffle source")
	}

	deck := make([]domain.RoleID, len(ctx.State.TemplateRoles))
	copy(deck, ctx.State.TemplateRoles)
	ctx.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	assignments := make(map[int]domain.RoleID, len(deck))
	for seat, role := range deck {
		assignments[seat] = role
	}

	return handlers.Accept(domain.StateAction{
		Type:        domain.ActionAssignRoles,
		Assignments: assignments,
	})
}
