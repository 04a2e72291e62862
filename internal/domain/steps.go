package domain

// StepID - Внутренний числовой идентификатор шага ночи
type StepID uint8

const (
	StepNone StepID = iota
	StepNightmareBlock
	StepMagicianSwap
	StepDreamcatcherDream
	StepWolfBrotherConfirm
	StepWolfKill
	StepWolfQueenCharm
	StepWolfRobotLearn
	StepSeerCheck
	StepMirrorSeerCheck
	StepDrunkSeerCheck
	StepPsychicCheck
	StepGargoyleCheck
	StepWitchAction
	StepGuardProtect
	StepHunterConfirm
	StepWolfKingConfirm
)

var stepIDToString = map[StepID]string{
	StepNone:               "none",
	StepNightmareBlock:     "nightmareBlock",
	StepMagicianSwap:       "magicianSwap",
	StepDreamcatcherDream:  "dreamcatcherDream",
	StepWolfBrotherConfirm: "wolfBrotherConfirm",
	StepWolfKill:           "wolfKill",
	StepWolfQueenCharm:     "wolfQueenCharm",
	StepWolfRobotLearn:     "wolfRobotLearn",
	StepSeerCheck:          "seerCheck",
	StepMirrorSeerCheck:    "mirrorSeerCheck",
	StepDrunkSeerCheck:     "drunkSeerCheck",
	StepPsychicCheck:       "psychicCheck",
	StepGargoyleCheck:      "gargoyleCheck",
	StepWitchAction:        "witchAction",
	StepGuardProtect:       "guardProtect",
	StepHunterConfirm:      "hunterConfirm",
	StepWolfKingConfirm:    "wolfKingConfirm",
}

var stepStringToID = func() map[string]StepID {
	m := make(map[string]StepID, len(stepIDToString))
	for id, s := range stepIDToString {
		m[s] = id
	}
	return m
}()

// ParseStep конвертирует строку в StepID
func ParseStep(s string) StepID {
	if val, ok := stepStringToID[s]; ok {
		return val
	}
	return StepNone
}

// String реализует интерфейс Stringer
func (s StepID) String() string {
	if val, ok := stepIDToString[s]; ok {
		return val
	}
	return "none"
}

// MasterNightOrder - единственный источник правды о порядке ночи.
// Полный тотальный порядок над всеми шагами; конкретный план ночи
// получается фильтрацией этого списка по составу шаблона (см. engine.BuildNightPlan).
// Никакой другой компонент не имеет права зашивать порядок шагов.
var MasterNightOrder = []StepID{
	StepNightmareBlock,
	StepMagicianSwap,
	StepDreamcatcherDream,
	StepWolfBrotherConfirm,
	StepWolfKill,
	StepWolfQueenCharm,
	StepWolfRobotLearn,
	StepSeerCheck,
	StepMirrorSeerCheck,
	StepDrunkSeerCheck,
	StepPsychicCheck,
	StepGargoyleCheck,
	StepWitchAction,
	StepGuardProtect,
	StepHunterConfirm,
	StepWolfKingConfirm,
}
