package domain

import "fmt"

// SchemaKind - закрытое множество форм ночного действия.
// Диспетчеризация по kind идет через switch без default-ветки "на авось":
// неизвестный kind обрабатывается как отказ (fail closed).
type SchemaKind uint8

const (
	SchemaConfirm SchemaKind = iota + 1
	SchemaChooseSeat
	SchemaMultiChooseSeat
	SchemaSwap
	SchemaCompound
	SchemaGroupConfirm
	SchemaWolfVote
)

var schemaKindToString = map[SchemaKind]string{
	SchemaConfirm:         "confirm",
	SchemaChooseSeat:      "chooseSeat",
	SchemaMultiChooseSeat: "multiChooseSeat",
	SchemaSwap:            "swap",
	SchemaCompound:        "compound",
	SchemaGroupConfirm:    "groupConfirm",
	SchemaWolfVote:        "wolfVote",
}

func (k SchemaKind) String() string {
	if s, ok := schemaKindToString[k]; ok {
		return s
	}
	return "unknown"
}

// ActionSchema описывает форму ночного действия одной роли.
type ActionSchema struct {
	Role RoleID
	Step StepID
	Kind SchemaKind

	// Skippable - может ли НЕзаблокированный актор пропустить действие.
	// Для confirm-шагов пропуск незаблокированным актором нелегален.
	Skippable bool

	// Reveal - возвращает ли шаг приватный результат, требующий
	// подтверждения клиентом до продвижения ночи.
	Reveal bool

	// WolfMeeting - участвует ли роль в волчьем совещании (wolfKill).
	WolfMeeting bool
}

// roleSchemas - реестр форм действий, ключ - роль.
// Роли без ночного действия в реестре отсутствуют.
// Полнота против MasterNightOrder проверяется в VerifyRegistry.
var roleSchemas = map[RoleID]ActionSchema{
	RoleNightmare:    {Role: RoleNightmare, Step: StepNightmareBlock, Kind: SchemaChooseSeat, Skippable: true, WolfMeeting: true},
	RoleMagician:     {Role: RoleMagician, Step: StepMagicianSwap, Kind: SchemaSwap, Skippable: true},
	RoleDreamcatcher: {Role: RoleDreamcatcher, Step: StepDreamcatcherDream, Kind: SchemaChooseSeat, Skippable: true},
	RoleWolfBrother:  {Role: RoleWolfBrother, Step: StepWolfBrotherConfirm, Kind: SchemaGroupConfirm, Skippable: false, WolfMeeting: true},
	RoleWolf:         {Role: RoleWolf, Step: StepWolfKill, Kind: SchemaWolfVote, Skippable: true, WolfMeeting: true},
	RoleWolfQueen:    {Role: RoleWolfQueen, Step: StepWolfQueenCharm, Kind: SchemaChooseSeat, Skippable: true, WolfMeeting: true},
	RoleWolfRobot:    {Role: RoleWolfRobot, Step: StepWolfRobotLearn, Kind: SchemaChooseSeat, Skippable: true, Reveal: true},
	RoleSeer:         {Role: RoleSeer, Step: StepSeerCheck, Kind: SchemaChooseSeat, Skippable: true, Reveal: true},
	RoleMirrorSeer:   {Role: RoleMirrorSeer, Step: StepMirrorSeerCheck, Kind: SchemaChooseSeat, Skippable: true, Reveal: true},
	RoleDrunkSeer:    {Role: RoleDrunkSeer, Step: StepDrunkSeerCheck, Kind: SchemaChooseSeat, Skippable: true, Reveal: true},
	RolePsychic:      {Role: RolePsychic, Step: StepPsychicCheck, Kind: SchemaChooseSeat, Skippable: true, Reveal: true},
	RoleGargoyle:     {Role: RoleGargoyle, Step: StepGargoyleCheck, Kind: SchemaMultiChooseSeat, Skippable: true, Reveal: true},
	RoleWitch:        {Role: RoleWitch, Step: StepWitchAction, Kind: SchemaCompound, Skippable: true},
	RoleGuard:        {Role: RoleGuard, Step: StepGuardProtect, Kind: SchemaChooseSeat, Skippable: true},
	RoleHunter:       {Role: RoleHunter, Step: StepHunterConfirm, Kind: SchemaConfirm, Skippable: false, Reveal: true},
	RoleWolfKing:     {Role: RoleWolfKing, Step: StepWolfKingConfirm, Kind: SchemaConfirm, Skippable: false, Reveal: true, WolfMeeting: true},

	// Роли без собственного шага, но с местом за волчьим столом
	RoleWhiteWolfKing: {Role: RoleWhiteWolfKing, Step: StepNone, WolfMeeting: true},
}

// RoleSchema возвращает форму действия роли.
// ok=false для ролей без ночного действия (villager, idiot, ...).
func RoleSchema(role RoleID) (ActionSchema, bool) {
	s, ok := roleSchemas[role]
	if !ok || s.Step == StepNone {
		return s, false
	}
	return s, true
}

// StepSchema возвращает форму действия по шагу ночи.
var stepSchemas = func() map[StepID]ActionSchema {
	m := make(map[StepID]ActionSchema, len(roleSchemas))
	for _, s := range roleSchemas {
		if s.Step == StepNone {
			continue
		}
		m[s.Step] = s
	}
	return m
}()

func StepSchema(step StepID) (ActionSchema, bool) {
	s, ok := stepSchemas[step]
	return s, ok
}

// IsWolfMeetingParticipant true, если роль сидит за волчьим столом
// и обязана голосовать на шаге wolfKill.
func IsWolfMeetingParticipant(role RoleID) bool {
	s, ok := roleSchemas[role]
	return ok && s.WolfMeeting
}

// VerifyRegistry сверяет реестр с мастер-таблицей порядка ночи:
// каждый шаг мастер-таблицы должен иметь ровно одну схему, каждая схема -
// известную роль. Вызывается из init: кривой реестр - ошибка сборки, не рантайма.
func VerifyRegistry() error {
	for _, step := range MasterNightOrder {
		if _, ok := stepSchemas[step]; !ok {
			return fmt.Errorf("night step %s has no schema", step)
		}
	}
	for role, s := range roleSchemas {
		if roleIDToString[role] == "" {
			return fmt.Errorf("schema registered for unknown role %d", role)
		}
		if s.Role != role {
			return fmt.Errorf("schema for %s references role %s", role, s.Role)
		}
	}
	return nil
}

func init() {
	if err := VerifyRegistry(); err != nil {
		panic(err)
	}
}
