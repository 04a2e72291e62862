package handlers

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
)

// IsSkipInput вычисляет "эта подача - пропуск" по форме схемы.
// Закрытый switch по kind; неизвестная форма - никогда не пропуск
// (fail closed: лучше пере-отклонить, чем впустить нелегальный ввод).
func IsSkipInput(kind domain.SchemaKind, in domain.ActionInput) bool {
	switch kind {
	case domain.SchemaConfirm:
		return in.Confirmed == nil || !*in.Confirmed
	case domain.SchemaChooseSeat, domain.SchemaWolfVote:
		return in.Target == nil
	case domain.SchemaMultiChooseSeat, domain.SchemaSwap:
		return len(in.Targets) == 0
	case domain.SchemaCompound:
		return in.Save == nil && in.Poison == nil
	case domain.SchemaGroupConfirm:
		return false
	default:
		return false
	}
}

// NightmareGuard - единственная точка правды блокировки кошмаром.
// Вызывается ПОСЛЕ цепочки гейтов и ДО резолвера:
//   - confirm-схема: незаблокированный НЕ может пропустить (отдельная
//     причина cannot_skip), заблокированный может ТОЛЬКО пропустить;
//   - любая другая схема: заблокированный может только пропустить,
//     незаблокированный дополнительных ограничений здесь не имеет.
//
// Возвращает пустую строку, если подача легальна.
func NightmareGuard(schema domain.ActionSchema, blockedSeat, actorSeat int, in domain.ActionInput) string {
	isSkip := IsSkipInput(schema.Kind, in)
	isBlocked := blockedSeat != domain.NoSeat && blockedSeat == actorSeat

	if schema.Kind == domain.SchemaConfirm {
		if isBlocked {
			if !isSkip {
				return domain.ReasonBlockedByNightmare
			}
			return ""
		}
		if isSkip {
			return domain.ReasonCannotSkip
		}
		return ""
	}

	if isBlocked && !isSkip {
		return domain.ReasonBlockedByNightmare
	}
	return ""
}
