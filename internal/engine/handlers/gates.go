package handlers

import (
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/systems"
)

// SubmitRequest - нормализованная подача ночного действия,
// общая для SUBMIT_ACTION и SUBMIT_WOLF_VOTE после делегирования.
type SubmitRequest struct {
	Seat        int
	ClaimedRole domain.RoleID
	Input       domain.ActionInput
}

// RunSubmitGates прогоняет упорядоченную, непереставляемую цепочку
// гейтов. Первый упавший гейт определяет причину отказа - порядок
// цепочки и есть политика выбора "самой релевантной" причины.
// Возвращает схему текущего шага и пустую причину при успехе.
func RunSubmitGates(ctx Context, req SubmitRequest) (domain.ActionSchema, string) {
	var zero domain.ActionSchema

	// 1. host_only: бизнес-логику исполняет только хост-процесс
	if !ctx.HostProcess {
		return zero, domain.ReasonHostOnly
	}

	// 2. no_state: комната должна существовать
	if ctx.State == nil {
		return zero, domain.ReasonNoState
	}

	// 3. invalid_status: действия принимаются только в Ongoing
	if ctx.State.Status != domain.StatusOngoing {
		return zero, domain.ReasonInvalidStatus
	}

	// 4. forbidden_while_audio_playing: глобальный замок, обязан
	// сработать раньше любых шаго-специфичных гейтов
	if ctx.State.IsAudioPlaying {
		return zero, domain.ReasonAudioPlaying
	}

	// 5. invalid_step: текущий шаг установлен и известен реестру
	step := ctx.State.CurrentStepID
	schema, known := domain.StepSchema(step)
	if step == domain.StepNone || !known {
		return zero, domain.ReasonInvalidStep
	}

	// 6. step_mismatch: роль подачи мапится на текущий шаг (для wolfKill -
	// членство в совещании). Это первичный механизм дедупликации:
	// повторная подача после продвижения шага умирает здесь.
	if step == domain.StepWolfKill {
		if !domain.IsWolfMeetingParticipant(req.ClaimedRole) {
			return zero, domain.ReasonStepMismatch
		}
	} else {
		rs, ok := domain.RoleSchema(req.ClaimedRole)
		if !ok || rs.Step != step {
			return zero, domain.ReasonStepMismatch
		}
	}

	// 7. not_seated: действующее место держит игрока
	player := ctx.State.PlayerAt(req.Seat)
	if player == nil {
		return zero, domain.ReasonNotSeated
	}

	// 8. role_mismatch: роль сидящего равна заявленной
	if player.Role != req.ClaimedRole {
		return zero, domain.ReasonRoleMismatch
	}

	// 9. no_resolver: защитный гейт, недостижим при корректном реестре
	if systems.Registry[step] == nil {
		return zero, domain.ReasonNoResolver
	}

	return schema, ""
}
