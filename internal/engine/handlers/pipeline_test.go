package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/systems"
)

func TestRunSubmitPipeline_SeerCheckProducesRevealAndAck(t *testing.T) {
	g := ongoingGame(map[int]domain.RoleID{0: domain.RoleSeer, 1: domain.RoleWolf}, domain.StepSeerCheck)

	out := RunSubmitPipeline(submitCtx(g), seerRequest())
	require.True(t, out.Success)
	require.Len(t, out.Actions, 3)

	assert.Equal(t, domain.ActionRecordAction, out.Actions[0].Type)
	require.NotNil(t, out.Actions[0].Record)
	assert.Equal(t, domain.StepSeerCheck, out.Actions[0].Record.Step)

	assert.Equal(t, domain.ActionApplyResolverResult, out.Actions[1].Type)
	require.NotNil(t, out.Actions[1].Reveal)
	assert.Equal(t, domain.VerdictWolf, out.Actions[1].Reveal.Verdict)

	// Приватный результат вешает шлагбаум продвижения
	assert.Equal(t, domain.ActionAddRevealAck, out.Actions[2].Type)
	assert.Equal(t, domain.StepSeerCheck.String(), out.Actions[2].AckKey)

	assert.Equal(t, []Effect{EffectBroadcastState, EffectSaveState}, out.Effects)
}

func TestRunSubmitPipeline_SkipProducesNoAck(t *testing.T) {
	g := ongoingGame(map[int]domain.RoleID{0: domain.RoleSeer, 1: domain.RoleWolf}, domain.StepSeerCheck)

	out := RunSubmitPipeline(submitCtx(g), SubmitRequest{Seat: 0, ClaimedRole: domain.RoleSeer})
	require.True(t, out.Success)
	// Пропуск: запись в журнал + пустой результат, без шлагбаума
	require.Len(t, out.Actions, 2)
	assert.Equal(t, domain.ActionRecordAction, out.Actions[0].Type)
	assert.Equal(t, domain.ActionApplyResolverResult, out.Actions[1].Type)
}

func TestRunSubmitPipeline_BlockedActorRejectedWithBroadcast(t *testing.T) {
	g := ongoingGame(map[int]domain.RoleID{0: domain.RoleSeer, 1: domain.RoleWolf}, domain.StepSeerCheck)
	g.Night.BlockedSeat = 0

	out := RunSubmitPipeline(submitCtx(g), seerRequest())
	require.False(t, out.Success)
	assert.Equal(t, domain.ReasonBlockedByNightmare, out.Reason)

	// Отказ уезжает в broadcast, чтобы UI подавшего не завис
	require.Len(t, out.Actions, 1)
	assert.Equal(t, domain.ActionRejected, out.Actions[0].Type)
	assert.Equal(t, []Effect{EffectBroadcastState}, out.Effects)
}

func TestRunSubmitPipeline_ResolverRejectionBroadcasts(t *testing.T) {
	g := ongoingGame(map[int]domain.RoleID{0: domain.RoleSeer, 1: domain.RoleWolf}, domain.StepSeerCheck)

	target := 42
	out := RunSubmitPipeline(submitCtx(g), SubmitRequest{
		Seat:        0,
		ClaimedRole: domain.RoleSeer,
		Input:       domain.ActionInput{Target: &target},
	})
	require.False(t, out.Success)
	assert.Equal(t, domain.ReasonInvalidTarget, out.Reason)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, domain.ActionRejected, out.Actions[0].Type)
}

func TestRunSubmitPipeline_WolfVoteTimer(t *testing.T) {
	g := ongoingGame(map[int]domain.RoleID{
		0: domain.RoleWolf,
		1: domain.RoleWolf,
		2: domain.RoleSeer,
	}, domain.StepWolfKill)

	target := 2

	// Первый голос из двух: полноты нет, таймер не трогаем
	out := RunSubmitPipeline(submitCtx(g), SubmitRequest{
		Seat: 0, ClaimedRole: domain.RoleWolf, Input: domain.ActionInput{Target: &target},
	})
	require.True(t, out.Success)
	assert.Equal(t, systems.TimerNoop, out.Timer)

	// Голос лег в таблицу - второй голос закрывает голосование
	g.Night.Votes[0] = target
	out = RunSubmitPipeline(submitCtx(g), SubmitRequest{
		Seat: 1, ClaimedRole: domain.RoleWolf, Input: domain.ActionInput{Target: &target},
	})
	require.True(t, out.Success)
	assert.Equal(t, systems.TimerStart, out.Timer)
}

func TestRunSubmitPipeline_WolfRobotLearnsHunter(t *testing.T) {
	g := ongoingGame(map[int]domain.RoleID{
		0: domain.RoleWolfRobot,
		1: domain.RoleHunter,
	}, domain.StepWolfRobotLearn)

	target := 1
	out := RunSubmitPipeline(submitCtx(g), SubmitRequest{
		Seat: 0, ClaimedRole: domain.RoleWolfRobot, Input: domain.ActionInput{Target: &target},
	})
	require.True(t, out.Success)

	// Два шлагбаума: попап результата и статус ружья
	var ackKeys []string
	for _, a := range out.Actions {
		if a.Type == domain.ActionAddRevealAck {
			ackKeys = append(ackKeys, a.AckKey)
		}
	}
	assert.Equal(t, []string{domain.StepWolfRobotLearn.String(), domain.AckKeyWolfRobotHunterStatus}, ackKeys)
}

func TestRunSubmitPipeline_SwapChangesEffectiveRole(t *testing.T) {
	// Обмен магика уже в агрегате: проверка места 2 видит роль напарника
	g := ongoingGame(map[int]domain.RoleID{
		0: domain.RoleSeer,
		1: domain.RoleWolf,
		2: domain.RoleVillager,
	}, domain.StepSeerCheck)
	g.Night.SwapSeats = []int{1, 2}

	target := 2
	out := RunSubmitPipeline(submitCtx(g), SubmitRequest{
		Seat: 0, ClaimedRole: domain.RoleSeer, Input: domain.ActionInput{Target: &target},
	})
	require.True(t, out.Success)
	require.NotNil(t, out.Actions[1].Reveal)
	assert.Equal(t, domain.VerdictWolf, out.Actions[1].Reveal.Verdict)
}
