package intents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

func hostCtx(g *domain.GameState) handlers.Context {
	return handlers.Context{
		State:        g,
		UID:          "host",
		SenderIsHost: true,
		HostProcess:  true,
		Coin:         func() float64 { return 0.9 },
		Shuffle:      func(n int, swap func(i, j int)) {},
	}
}

func playerCtx(g *domain.GameState, uid string) handlers.Context {
	return handlers.Context{
		State:       g,
		UID:         uid,
		HostProcess: true,
		Coin:        func() float64 { return 0.9 },
	}
}

func boardOf(roles ...domain.RoleID) *domain.GameState {
	return domain.NewGameState("TEST01", "host", roles)
}

func seatAll(g *domain.GameState) {
	for i := range g.TemplateRoles {
		g.Players[i] = &domain.Player{UID: string(rune('a' + i)), SeatNumber: i}
	}
	g.Status = domain.StatusSeated
}

// --- JOIN_SEAT / LEAVE_MY_SEAT ---

func TestHandleJoinSeat(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)

	out := HandleJoinSeat(playerCtx(g, "u1"), api.JoinSeatPayload{Seat: 0, DisplayName: "Ann"})
	require.True(t, out.Success)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, domain.ActionPlayerJoin, out.Actions[0].Type)
	assert.Equal(t, "u1", out.Actions[0].UID)
}

func TestHandleJoinSeat_SeatTaken(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Players[0] = &domain.Player{UID: "other", SeatNumber: 0}

	out := HandleJoinSeat(playerCtx(g, "u1"), api.JoinSeatPayload{Seat: 0})
	assert.False(t, out.Success)
	assert.Equal(t, domain.ReasonSeatTaken, out.Reason)
}

func TestHandleJoinSeat_RejoinOwnSeatIdempotent(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Players[0] = &domain.Player{UID: "u1", SeatNumber: 0}

	out := HandleJoinSeat(playerCtx(g, "u1"), api.JoinSeatPayload{Seat: 0})
	assert.True(t, out.Success)
	assert.Empty(t, out.Actions)
}

func TestHandleJoinSeat_MoveIsLeavePlusJoin(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Players[0] = &domain.Player{UID: "u1", SeatNumber: 0}

	out := HandleJoinSeat(playerCtx(g, "u1"), api.JoinSeatPayload{Seat: 1})
	require.True(t, out.Success)
	require.Len(t, out.Actions, 2)
	assert.Equal(t, domain.ActionPlayerLeave, out.Actions[0].Type)
	assert.Equal(t, 0, out.Actions[0].Seat)
	assert.Equal(t, domain.ActionPlayerJoin, out.Actions[1].Type)
	assert.Equal(t, 1, out.Actions[1].Seat)
}

func TestHandleJoinSeat_OutOfRange(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	out := HandleJoinSeat(playerCtx(g, "u1"), api.JoinSeatPayload{Seat: 5})
	assert.Equal(t, domain.ReasonInvalidSeat, out.Reason)
}

func TestHandleJoinSeat_RejectedAfterAssign(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Status = domain.StatusAssigned
	out := HandleJoinSeat(playerCtx(g, "u1"), api.JoinSeatPayload{Seat: 0})
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)
}

func TestHandleLeaveMySeat(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Players[1] = &domain.Player{UID: "u1", SeatNumber: 1}

	out := HandleLeaveMySeat(playerCtx(g, "u1"))
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionPlayerLeave, out.Actions[0].Type)
	assert.Equal(t, 1, out.Actions[0].Seat)

	// Не сидит - отказ
	out = HandleLeaveMySeat(playerCtx(g, "stranger"))
	assert.Equal(t, domain.ReasonNotSeated, out.Reason)
}

func TestHandleLeaveMySeat_ForbiddenDuringNight(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Players[0] = &domain.Player{UID: "u1", SeatNumber: 0}
	g.Status = domain.StatusOngoing

	out := HandleLeaveMySeat(playerCtx(g, "u1"))
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)
}

// --- UPDATE_TEMPLATE ---

func TestParseTemplate(t *testing.T) {
	template, ok := ParseTemplate([]string{"wolf", "seer", "witch"}, "")
	require.True(t, ok)
	assert.Equal(t, []domain.RoleID{domain.RoleWolf, domain.RoleSeer, domain.RoleWitch}, template)

	template, ok = ParseTemplate(nil, "standard9")
	require.True(t, ok)
	assert.Len(t, template, 9)

	_, ok = ParseTemplate([]string{"wolf", "banshee"}, "")
	assert.False(t, ok)
	_, ok = ParseTemplate(nil, "noSuchPreset")
	assert.False(t, ok)
	_, ok = ParseTemplate(nil, "")
	assert.False(t, ok)
}

func TestHandleUpdateTemplate(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)

	out := HandleUpdateTemplate(hostCtx(g), api.UpdateTemplatePayload{Roles: []string{"wolf", "seer", "witch"}})
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionUpdateTemplate, out.Actions[0].Type)
	assert.Len(t, out.Actions[0].Template, 3)
}

func TestHandleUpdateTemplate_HostOnly(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	out := HandleUpdateTemplate(playerCtx(g, "u1"), api.UpdateTemplatePayload{Roles: []string{"wolf"}})
	assert.Equal(t, domain.ReasonHostOnly, out.Reason)
}

func TestHandleUpdateTemplate_InvalidRoles(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	out := HandleUpdateTemplate(hostCtx(g), api.UpdateTemplatePayload{Roles: []string{"banshee"}})
	assert.Equal(t, domain.ReasonInvalidTemplate, out.Reason)
}

func TestHandleUpdateTemplate_OnlyBeforeAssign(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	g.Status = domain.StatusAssigned
	out := HandleUpdateTemplate(hostCtx(g), api.UpdateTemplatePayload{Roles: []string{"wolf"}})
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)
}

// --- ASSIGN_ROLES ---

func TestHandleAssignRoles(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer, domain.RoleWitch)
	seatAll(g)

	out := HandleAssignRoles(hostCtx(g))
	require.True(t, out.Success)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, domain.ActionAssignRoles, out.Actions[0].Type)

	// Перестановка шаблона: мультимножество ролей сохраняется
	assignments := out.Actions[0].Assignments
	require.Len(t, assignments, 3)
	got := map[domain.RoleID]int{}
	for _, role := range assignments {
		got[role]++
	}
	assert.Equal(t, map[domain.RoleID]int{domain.RoleWolf: 1, domain.RoleSeer: 1, domain.RoleWitch: 1}, got)
}

func TestHandleAssignRoles_RequiresSeated(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	out := HandleAssignRoles(hostCtx(g))
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)
}

// --- VIEWED_ROLE ---

func TestHandleViewedRole(t *testing.T) {
	g := boardOf(domain.RoleWolf, domain.RoleSeer)
	seatAll(g)
	g.Status = domain.StatusAssigned

	out := HandleViewedRole(playerCtx(g, "a"), api.ViewedRolePayload{Seat: 0})
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionPlayerViewedRole, out.Actions[0].Type)

	// Чужое место
	out = HandleViewedRole(playerCtx(g, "a"), api.ViewedRolePayload{Seat: 1})
	assert.Equal(t, domain.ReasonNotYourSeat, out.Reason)

	// Пустое место
	g.Players[1] = nil
	out = HandleViewedRole(playerCtx(g, "b"), api.ViewedRolePayload{Seat: 1})
	assert.Equal(t, domain.ReasonNotSeated, out.Reason)
}

func TestHandleViewedRole_OnlyInAssigned(t *testing.T) {
	g := boardOf(domain.RoleWolf)
	seatAll(g)

	out := HandleViewedRole(playerCtx(g, "a"), api.ViewedRolePayload{Seat: 0})
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)
}

// --- START_NIGHT / ADVANCE_NIGHT / END_NIGHT ---

func readyBoard(roles ...domain.RoleID) *domain.GameState {
	g := boardOf(roles...)
	for i, role := range roles {
		g.Players[i] = &domain.Player{
			UID: string(rune('a' + i)), SeatNumber: i, Role: role, HasViewedRole: true,
		}
	}
	g.Status = domain.StatusReady
	return g
}

func TestHandleStartNight(t *testing.T) {
	g := readyBoard(domain.RoleWolf, domain.RoleSeer, domain.RoleVillager)

	out := HandleStartNight(hostCtx(g))
	require.True(t, out.Success)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, domain.ActionStartNight, out.Actions[0].Type)
	assert.Equal(t, []domain.StepID{domain.StepWolfKill, domain.StepSeerCheck}, out.Actions[0].Plan)
}

func TestHandleStartNight_EmptyPlanEndsImmediately(t *testing.T) {
	g := readyBoard(domain.RoleVillager, domain.RoleIdiot)

	out := HandleStartNight(hostCtx(g))
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionEndNight, out.Actions[0].Type)
	assert.Equal(t, []int{}, out.Actions[0].Deaths)
}

func TestHandleStartNight_Gates(t *testing.T) {
	g := readyBoard(domain.RoleWolf, domain.RoleSeer)
	g.Status = domain.StatusSeated
	out := HandleStartNight(hostCtx(g))
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)

	g.Status = domain.StatusReady
	out = HandleStartNight(playerCtx(g, "a"))
	assert.Equal(t, domain.ReasonHostOnly, out.Reason)
}

func ongoingBoard(roles ...domain.RoleID) *domain.GameState {
	g := readyBoard(roles...)
	g.Status = domain.StatusOngoing
	g.Night = domain.NewNightResults()
	g.Plan = domain.BuildNightPlan(roles)
	g.CurrentStepIndex = 0
	g.CurrentStepID = g.Plan[0]
	g.PendingRevealAcks = map[string]bool{}
	return g
}

func TestHandleAdvanceNight(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleSeer)

	out := HandleAdvanceNight(hostCtx(g))
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionAdvanceStep, out.Actions[0].Type)
	assert.Equal(t, domain.StepSeerCheck, out.Actions[0].Step)
}

func TestHandleAdvanceNight_BlockedByPendingAcks(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleSeer)
	g.PendingRevealAcks["seerCheck"] = true

	out := HandleAdvanceNight(hostCtx(g))
	assert.Equal(t, domain.ReasonPendingRevealAck, out.Reason)
}

func TestHandleAdvanceNight_PastEndCalculatesDeaths(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleSeer)
	g.CurrentStepIndex = len(g.Plan) - 1
	g.CurrentStepID = g.Plan[g.CurrentStepIndex]
	g.Night.Votes[0] = 1

	out := HandleAdvanceNight(hostCtx(g))
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionEndNight, out.Actions[0].Type)
	assert.Equal(t, []int{1}, out.Actions[0].Deaths)
}

func TestHandleEndNight_Force(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleSeer)
	g.Night.Votes[0] = 1

	out := HandleEndNight(hostCtx(g))
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionEndNight, out.Actions[0].Type)
	assert.Equal(t, []int{1}, out.Actions[0].Deaths)
}

// --- SUBMIT_WOLF_VOTE ---

func TestHandleSubmitWolfVote_Delegates(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleWolf, domain.RoleSeer)
	require.Equal(t, domain.StepWolfKill, g.CurrentStepID)

	out := HandleSubmitWolfVote(hostCtx(g), api.WolfVotePayload{Seat: 0, Target: 2})
	require.True(t, out.Success)
	require.NotNil(t, out.Actions[1].Updates)
	assert.Equal(t, domain.SeatVote{Seat: 0, Target: 2}, *out.Actions[1].Updates.Vote)
}

func TestHandleSubmitWolfVote_SentinelIsEmptyKnife(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleWolf, domain.RoleSeer)

	out := HandleSubmitWolfVote(hostCtx(g), api.WolfVotePayload{Seat: 0, Target: -1})
	require.True(t, out.Success)
	assert.Equal(t, domain.NoSeat, out.Actions[1].Updates.Vote.Target)
}

func TestHandleSubmitWolfVote_NotWolfParticipant(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleWolf, domain.RoleSeer)

	out := HandleSubmitWolfVote(hostCtx(g), api.WolfVotePayload{Seat: 2, Target: 0})
	assert.Equal(t, domain.ReasonNotWolfParticipant, out.Reason)
}

func TestHandleSubmitWolfVote_EmptySeatFallsToGates(t *testing.T) {
	// Пустое место не дает узнать роль: неизвестная роль без ночного
	// шага падает на гейте step_mismatch раньше not_seated
	g := ongoingBoard(domain.RoleWolf, domain.RoleWolf, domain.RoleSeer)
	g.Players[1] = nil

	out := HandleSubmitWolfVote(hostCtx(g), api.WolfVotePayload{Seat: 1, Target: 2})
	assert.False(t, out.Success)
	assert.Equal(t, domain.ReasonStepMismatch, out.Reason)
}

// --- RESTART / NIGHT REVIEW / ACKS / AUDIO ---

func endedBoard(roles ...domain.RoleID) *domain.GameState {
	g := readyBoard(roles...)
	g.Status = domain.StatusEnded
	g.Deaths = []int{}
	return g
}

func TestHandleRestartGame(t *testing.T) {
	g := endedBoard(domain.RoleWolf, domain.RoleSeer)

	out := HandleRestartGame(hostCtx(g))
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionRestartGame, out.Actions[0].Type)

	g.Status = domain.StatusOngoing
	out = HandleRestartGame(hostCtx(g))
	assert.Equal(t, domain.ReasonInvalidStatus, out.Reason)
}

func TestHandleShareNightReview(t *testing.T) {
	g := endedBoard(domain.RoleWolf, domain.RoleSeer)

	out := HandleShareNightReview(hostCtx(g), api.ShareNightReviewPayload{Seats: []int{0, 1}})
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionSetNightReviewAllowedSeats, out.Actions[0].Type)
	assert.Equal(t, []int{0, 1}, out.Actions[0].Seats)

	out = HandleShareNightReview(playerCtx(g, "a"), api.ShareNightReviewPayload{Seats: []int{0}})
	assert.Equal(t, domain.ReasonHostOnly, out.Reason)
}

func TestHandleAckReveal(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleSeer)
	g.PendingRevealAcks["seerCheck"] = true

	out := HandleAckReveal(playerCtx(g, "b"), api.AckRevealPayload{Key: "seerCheck"})
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionClearRevealAck, out.Actions[0].Type)
	assert.Equal(t, "seerCheck", out.Actions[0].AckKey)

	// Неизвестный ключ - отказ, а не тихий no-op
	out = HandleAckReveal(playerCtx(g, "b"), api.AckRevealPayload{Key: "bogus"})
	assert.Equal(t, domain.ReasonUnknownAck, out.Reason)
}

func TestHandleSetWolfRobotHunterStatusViewed(t *testing.T) {
	g := ongoingBoard(domain.RoleWolfRobot, domain.RoleHunter)
	g.PendingRevealAcks[domain.AckKeyWolfRobotHunterStatus] = true

	out := HandleSetWolfRobotHunterStatusViewed(playerCtx(g, "a"))
	require.True(t, out.Success)
	require.Len(t, out.Actions, 2)
	assert.Equal(t, domain.ActionSetWolfRobotHunterStatusViewed, out.Actions[0].Type)
	assert.True(t, out.Actions[0].Viewed)
	assert.Equal(t, domain.AckKeyWolfRobotHunterStatus, out.Actions[1].AckKey)
}

func TestHandleSetAudioPlaying(t *testing.T) {
	g := ongoingBoard(domain.RoleWolf, domain.RoleSeer)

	out := HandleSetAudioPlaying(hostCtx(g), api.AudioPayload{Playing: true})
	require.True(t, out.Success)
	assert.Equal(t, domain.ActionSetAudioPlaying, out.Actions[0].Type)
	assert.True(t, out.Actions[0].Audio)

	out = HandleSetAudioPlaying(playerCtx(g, "a"), api.AudioPayload{Playing: true})
	assert.Equal(t, domain.ReasonHostOnly, out.Reason)
}
