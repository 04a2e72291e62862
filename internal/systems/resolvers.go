package systems

import (
	"fmt"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
)

// Context - read-only контекст резолвера. Резолвер чистый: тот же вход
// до продвижения шага обязан давать тот же результат (gate step_mismatch -
// единственный механизм дедупликации, никакого флага "уже ходил" нет).
type Context struct {
	ActorSeat int
	ActorRole domain.RoleID

	// SeatCount - число мест на доске, цели валидны в 0..SeatCount-1.
	SeatCount int

	// RoleAt - эффективная роль места с учетом живой маскировки/обмена.
	// Для пустого или неизвестного места возвращает RoleUnknown.
	RoleAt func(seat int) domain.RoleID

	Night    *domain.NightResults
	WitchCtx *domain.WitchContext
	RobotCtx *domain.WolfRobotContext

	IsNight1 bool

	// Coin - источник случайности пьяного провидца. Бросок не пишется
	// в состояние: при реплее он перебрасывается заново.
	Coin func() float64
}

// Result - исход резолвера.
type Result struct {
	Valid   bool
	Reason  string
	Updates *domain.NightUpdates
	Reveal  *domain.Reveal
}

func reject(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// Resolver - чистая функция одного шага ночи.
type Resolver func(ctx Context, in domain.ActionInput) Result

// Registry - полная карта шаг -> резолвер. Полнота против мастер-таблицы
// проверяется в init: gate no_resolver недостижим по построению.
var Registry = map[domain.StepID]Resolver{
	domain.StepNightmareBlock:     resolveNightmareBlock,
	domain.StepMagicianSwap:       resolveMagicianSwap,
	domain.StepDreamcatcherDream:  resolveDreamcatcherDream,
	domain.StepWolfBrotherConfirm: resolveGroupConfirm,
	domain.StepWolfKill:           resolveWolfKill,
	domain.StepWolfQueenCharm:     resolveWolfQueenCharm,
	domain.StepWolfRobotLearn:     resolveWolfRobotLearn,
	domain.StepSeerCheck:          resolveSeerCheck,
	domain.StepMirrorSeerCheck:    resolveMirrorSeerCheck,
	domain.StepDrunkSeerCheck:     resolveDrunkSeerCheck,
	domain.StepPsychicCheck:       resolvePsychicCheck,
	domain.StepGargoyleCheck:      resolveGargoyleCheck,
	domain.StepWitchAction:        resolveWitchAction,
	domain.StepGuardProtect:       resolveGuardProtect,
	domain.StepHunterConfirm:      resolveHunterConfirm,
	domain.StepWolfKingConfirm:    resolveWolfKingConfirm,
}

func init() {
	for _, step := range domain.MasterNightOrder {
		if Registry[step] == nil {
			panic(fmt.Sprintf("night step %s has no resolver", step))
		}
	}
}

// EffectiveRole возвращает роль места с учетом обмена магика:
// если места уже обменяны этой ночью, проверки видят роль напарника.
func EffectiveRole(raw map[int]domain.RoleID, swap []int, seat int) domain.RoleID {
	if len(swap) == 2 {
		switch seat {
		case swap[0]:
			seat = swap[1]
		case swap[1]:
			seat = swap[0]
		}
	}
	return raw[seat]
}

// skipResult - принятый пропуск: действие легально, агрегат не меняется.
func skipResult() Result {
	return Result{Valid: true}
}

func (c Context) validTarget(seat int) bool {
	return seat >= 0 && seat < c.SeatCount && c.RoleAt(seat) != domain.RoleUnknown
}

// --- Резолверы шагов ---

func resolveNightmareBlock(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	upd := &domain.NightUpdates{BlockedSeat: &target}
	// Блок участника волчьего совещания гасит нож на всю ночь
	if domain.IsWolfMeetingParticipant(ctx.RoleAt(target)) {
		disabled := true
		upd.WolfKillDisabled = &disabled
	}
	return Result{Valid: true, Updates: upd}
}

func resolveMagicianSwap(ctx Context, in domain.ActionInput) Result {
	if len(in.Targets) == 0 {
		return skipResult()
	}
	if len(in.Targets) != 2 || in.Targets[0] == in.Targets[1] {
		return reject(domain.ReasonInvalidTarget)
	}
	for _, t := range in.Targets {
		if !ctx.validTarget(t) {
			return reject(domain.ReasonInvalidTarget)
		}
	}
	return Result{Valid: true, Updates: &domain.NightUpdates{SwapSeats: []int{in.Targets[0], in.Targets[1]}}}
}

func resolveDreamcatcherDream(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	return Result{Valid: true, Updates: &domain.NightUpdates{DreamSeat: &target}}
}

// resolveGroupConfirm - групповое подтверждение (братья-волки узнают
// друг друга). Пропуском не бывает, агрегат не меняет.
func resolveGroupConfirm(Context, domain.ActionInput) Result {
	return Result{Valid: true}
}

func resolveWolfKill(ctx Context, in domain.ActionInput) Result {
	target := domain.NoSeat
	if in.Target != nil {
		target = *in.Target
	}
	if target != domain.NoSeat {
		// Кошмар заблокировал волка: принимается только пустой нож
		if ctx.Night != nil && ctx.Night.WolfKillDisabled {
			return reject(domain.ReasonWolfKillDisabled)
		}
		// Ограничения "не в себя" нет: волки вправе резать волка
		if !ctx.validTarget(target) {
			return reject(domain.ReasonInvalidTarget)
		}
	}
	return Result{Valid: true, Updates: &domain.NightUpdates{Vote: &domain.SeatVote{Seat: ctx.ActorSeat, Target: target}}}
}

func resolveWolfQueenCharm(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if target == ctx.ActorSeat || !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	return Result{Valid: true, Updates: &domain.NightUpdates{CharmedSeat: &target}}
}

func resolveWolfRobotLearn(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	learned := ctx.RoleAt(target)
	if learned == domain.RoleUnknown {
		// Непустое место без роли в Ongoing - порча состояния, не edge case
		panic(fmt.Sprintf("invariant violation: seat %d has no role during wolf robot learn", target))
	}
	return Result{
		Valid:   true,
		Updates: &domain.NightUpdates{Learned: &domain.LearnedRole{Seat: target, Role: learned}},
		Reveal:  &domain.Reveal{Target: target, Verdict: learned.String()},
	}
}

func checkVerdict(role domain.RoleID) string {
	if role.IsWolfSide() {
		return domain.VerdictWolf
	}
	return domain.VerdictGood
}

func invertVerdict(v string) string {
	if v == domain.VerdictWolf {
		return domain.VerdictGood
	}
	return domain.VerdictWolf
}

func resolveSeerCheck(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	return Result{
		Valid:   true,
		Updates: &domain.NightUpdates{SeerCheckSeat: &target},
		Reveal:  &domain.Reveal{Target: target, Verdict: checkVerdict(ctx.RoleAt(target))},
	}
}

// resolveMirrorSeerCheck всегда инвертирует истинную сторону цели.
func resolveMirrorSeerCheck(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	return Result{
		Valid:  true,
		Reveal: &domain.Reveal{Target: target, Verdict: invertVerdict(checkVerdict(ctx.RoleAt(target)))},
	}
}

// resolveDrunkSeerCheck бросает честную монету на каждый вызов:
// >= 0.5 - правда, < 0.5 - инверсия.
func resolveDrunkSeerCheck(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	verdict := checkVerdict(ctx.RoleAt(target))
	if ctx.Coin() < 0.5 {
		verdict = invertVerdict(verdict)
	}
	return Result{Valid: true, Reveal: &domain.Reveal{Target: target, Verdict: verdict}}
}

// resolvePsychicCheck раскрывает точную роль цели.
func resolvePsychicCheck(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	return Result{Valid: true, Reveal: &domain.Reveal{Target: target, Verdict: ctx.RoleAt(target).String()}}
}

// resolveGargoyleCheck проверяет до двух мест и отвечает,
// есть ли среди них волчья сторона.
func resolveGargoyleCheck(ctx Context, in domain.ActionInput) Result {
	if len(in.Targets) == 0 {
		return skipResult()
	}
	if len(in.Targets) > 2 {
		return reject(domain.ReasonInvalidTarget)
	}
	verdict := domain.VerdictGood
	for _, t := range in.Targets {
		if !ctx.validTarget(t) {
			return reject(domain.ReasonInvalidTarget)
		}
		if ctx.RoleAt(t).IsWolfSide() {
			verdict = domain.VerdictWolf
		}
	}
	return Result{Valid: true, Reveal: &domain.Reveal{Target: in.Targets[0], Verdict: verdict}}
}

// resolveWitchAction - compound из двух независимых подшагов save и poison.
// Пропуск - оба подрезультата отсутствуют.
func resolveWitchAction(ctx Context, in domain.ActionInput) Result {
	if in.Save == nil && in.Poison == nil {
		return skipResult()
	}
	upd := &domain.NightUpdates{}
	if in.Save != nil {
		save := *in.Save
		if save == ctx.ActorSeat {
			return reject(domain.ReasonCannotSaveSelf)
		}
		if ctx.WitchCtx == nil || !ctx.WitchCtx.CanSave || save != ctx.WitchCtx.KilledSeat {
			return reject(domain.ReasonInvalidTarget)
		}
		upd.SavedSeat = &save
	}
	if in.Poison != nil {
		poison := *in.Poison
		if ctx.WitchCtx != nil && !ctx.WitchCtx.CanPoison {
			return reject(domain.ReasonInvalidTarget)
		}
		if !ctx.validTarget(poison) {
			return reject(domain.ReasonInvalidTarget)
		}
		upd.PoisonedSeat = &poison
	}
	return Result{Valid: true, Updates: upd}
}

// resolveGuardProtect: защита себя легальна, ограничения "не в себя" нет.
func resolveGuardProtect(ctx Context, in domain.ActionInput) Result {
	if in.Target == nil {
		return skipResult()
	}
	target := *in.Target
	if !ctx.validTarget(target) {
		return reject(domain.ReasonInvalidTarget)
	}
	return Result{Valid: true, Updates: &domain.NightUpdates{GuardedSeat: &target}}
}

func gunVerdict(ctx Context) string {
	// Отравленный стрелок теряет ружье
	if ctx.Night != nil && ctx.Night.PoisonedSeat == ctx.ActorSeat {
		return domain.VerdictNoGun
	}
	return domain.VerdictGun
}

func resolveHunterConfirm(ctx Context, in domain.ActionInput) Result {
	// Легальность пропуска уже решил гард кошмара: сюда пропуск доходит
	// только от заблокированного актора - принимаем без раскрытия.
	if in.Confirmed == nil || !*in.Confirmed {
		return skipResult()
	}
	return Result{Valid: true, Reveal: &domain.Reveal{Target: ctx.ActorSeat, Verdict: gunVerdict(ctx)}}
}

func resolveWolfKingConfirm(ctx Context, in domain.ActionInput) Result {
	if in.Confirmed == nil || !*in.Confirmed {
		return skipResult()
	}
	return Result{Valid: true, Reveal: &domain.Reveal{Target: ctx.ActorSeat, Verdict: gunVerdict(ctx)}}
}
