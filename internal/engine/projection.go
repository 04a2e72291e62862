package engine

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// BuildStateView строит broadcast-проекцию канонического состояния.
// Проекция без потерь: зеркало клиента обязано уметь отрисовать все,
// что перечислено в модели данных. Ключи мест нормализованы в строки.
func BuildStateView(g *domain.GameState) api.StateView {
	view := api.StateView{
		RoomCode:                    g.RoomCode,
		HostUID:                     g.HostUID,
		Status:                      g.Status.String(),
		TemplateRoles:               roleNames(g.TemplateRoles),
		Players:                     make(map[string]*api.PlayerView, len(g.Players)),
		CurrentStepIndex:            g.CurrentStepIndex,
		IsAudioPlaying:              g.IsAudioPlaying,
		WolfRobotHunterStatusViewed: g.WolfRobotHunterStatusViewed,
		Deaths:                      g.Deaths,
		NightReviewSeats:            g.NightReviewSeats,
	}

	if g.CurrentStepID != domain.StepNone {
		view.CurrentStepID = g.CurrentStepID.String()
	}
	for _, step := range g.Plan {
		view.Plan = append(view.Plan, step.String())
	}

	for seat, p := range g.Players {
		key := strconv.Itoa(seat)
		if p == nil {
			view.Players[key] = nil
			continue
		}
		pv := &api.PlayerView{
			UID:           p.UID,
			SeatNumber:    p.SeatNumber,
			HasViewedRole: p.HasViewedRole,
			DisplayName:   p.DisplayName,
		}
		if p.Role != domain.RoleUnknown {
			pv.Role = p.Role.String()
		}
		view.Players[key] = pv
	}

	if n := g.Night; n != nil {
		nv := &api.NightView{
			Votes:            make(map[string]int, len(n.Votes)),
			BlockedSeat:      n.BlockedSeat,
			WolfKillDisabled: n.WolfKillDisabled,
			GuardedSeat:      n.GuardedSeat,
			SavedSeat:        n.SavedSeat,
			PoisonedSeat:     n.PoisonedSeat,
			CharmedSeat:      n.CharmedSeat,
			DreamSeat:        n.DreamSeat,
			SwapSeats:        n.SwapSeats,
			SeerCheckSeat:    n.SeerCheckSeat,
		}
		for seat, target := range n.Votes {
			nv.Votes[strconv.Itoa(seat)] = target
		}
		view.Night = nv
	}

	if w := g.WitchCtx; w != nil {
		view.WitchContext = &api.WitchContextView{
			KilledSeat: w.KilledSeat,
			CanSave:    w.CanSave,
			CanPoison:  w.CanPoison,
		}
	}
	if r := g.WolfRobotCtx; r != nil {
		view.WolfRobotContext = &api.WolfRobotContextView{CanLearn: r.CanLearn}
	}

	if len(g.Reveals) > 0 {
		view.Reveals = make(map[string]api.RevealView, len(g.Reveals))
		for step, rev := range g.Reveals {
			view.Reveals[step.String()] = api.RevealView{Target: rev.Target, Verdict: rev.Verdict}
		}
	}
	for key := range g.PendingRevealAcks {
		view.PendingRevealAcks = append(view.PendingRevealAcks, key)
	}
	sort.Strings(view.PendingRevealAcks)

	return view
}

// BuildIntentResult проецирует исход намерения в адресный ответ сокета.
func BuildIntentResult(intentType string, out handlers.Outcome) api.IntentResult {
	res := api.IntentResult{
		Type:    intentType,
		Success: out.Success,
		Reason:  out.Reason,
	}
	for _, action := range out.Actions {
		raw, err := json.Marshal(action)
		if err != nil {
			continue
		}
		res.Actions = append(res.Actions, raw)
	}
	for _, effect := range out.Effects {
		res.SideEffects = append(res.SideEffects, effect.String())
	}
	return res
}

func roleNames(roles []domain.RoleID) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}
