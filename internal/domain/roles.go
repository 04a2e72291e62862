package domain

import "strings"

// RoleID - Внутренний числовой идентификатор роли
type RoleID uint8

const (
	RoleUnknown RoleID = iota

	// Мирная деревня
	RoleVillager
	RoleSeer
	RoleMirrorSeer
	RoleDrunkSeer
	RolePsychic
	RoleGargoyle
	RoleWitch
	RoleGuard
	RoleHunter
	RoleDreamcatcher
	RoleMagician
	RoleWitcher
	RoleIdiot
	RoleKnight

	// Волчья стая
	RoleWolf
	RoleWolfKing
	RoleWhiteWolfKing
	RoleWolfQueen
	RoleNightmare
	RoleWolfRobot
	RoleWolfBrother
	RoleSpiritKnight
)

// Team - сторона, за которую играет роль
type Team uint8

const (
	TeamUnknown Team = iota
	TeamVillage
	TeamWolf
)

// Маппинг для конвертации JSON -> Domain
var roleStringToID = map[string]RoleID{
	"villager":      RoleVillager,
	"seer":          RoleSeer,
	"mirrorSeer":    RoleMirrorSeer,
	"drunkSeer":     RoleDrunkSeer,
	"psychic":       RolePsychic,
	"gargoyle":      RoleGargoyle,
	"witch":         RoleWitch,
	"guard":         RoleGuard,
	"hunter":        RoleHunter,
	"dreamcatcher":  RoleDreamcatcher,
	"magician":      RoleMagician,
	"witcher":       RoleWitcher,
	"idiot":         RoleIdiot,
	"knight":        RoleKnight,
	"wolf":          RoleWolf,
	"wolfKing":      RoleWolfKing,
	"whiteWolfKing": RoleWhiteWolfKing,
	"wolfQueen":     RoleWolfQueen,
	"nightmare":     RoleNightmare,
	"wolfRobot":     RoleWolfRobot,
	"wolfBrother":   RoleWolfBrother,
	"spiritKnight":  RoleSpiritKnight,
}

// Маппинг для логов Domain -> String
var roleIDToString = func() map[RoleID]string {
	m := make(map[RoleID]string, len(roleStringToID))
	for s, id := range roleStringToID {
		m[id] = s
	}
	return m
}()

// roleTeams определяет сторону каждой роли.
// Волчья сторона - это в том числе замаскированные волки (wolfRobot, spiritKnight):
// для проверок провидцев они "волки".
var roleTeams = map[RoleID]Team{
	RoleVillager:      TeamVillage,
	RoleSeer:          TeamVillage,
	RoleMirrorSeer:    TeamVillage,
	RoleDrunkSeer:     TeamVillage,
	RolePsychic:       TeamVillage,
	RoleGargoyle:      TeamVillage,
	RoleWitch:         TeamVillage,
	RoleGuard:         TeamVillage,
	RoleHunter:        TeamVillage,
	RoleDreamcatcher:  TeamVillage,
	RoleMagician:      TeamVillage,
	RoleWitcher:       TeamVillage,
	RoleIdiot:         TeamVillage,
	RoleKnight:        TeamVillage,
	RoleWolf:          TeamWolf,
	RoleWolfKing:      TeamWolf,
	RoleWhiteWolfKing: TeamWolf,
	RoleWolfQueen:     TeamWolf,
	RoleNightmare:     TeamWolf,
	RoleWolfRobot:     TeamWolf,
	RoleWolfBrother:   TeamWolf,
	RoleSpiritKnight:  TeamWolf,
}

// AllRoles перечисляет все известные роли (для проверок полноты реестра).
var AllRoles = []RoleID{
	RoleVillager, RoleSeer, RoleMirrorSeer, RoleDrunkSeer, RolePsychic,
	RoleGargoyle, RoleWitch, RoleGuard, RoleHunter, RoleDreamcatcher,
	RoleMagician, RoleWitcher, RoleIdiot, RoleKnight,
	RoleWolf, RoleWolfKing, RoleWhiteWolfKing, RoleWolfQueen,
	RoleNightmare, RoleWolfRobot, RoleWolfBrother, RoleSpiritKnight,
}

// ParseRole конвертирует строку из JSON в RoleID
func ParseRole(s string) RoleID {
	if val, ok := roleStringToID[s]; ok {
		return val
	}
	// Пробуем нечувствительно к регистру, клиенты бывают разные
	for name, id := range roleStringToID {
		if strings.EqualFold(name, s) {
			return id
		}
	}
	return RoleUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (r RoleID) String() string {
	if val, ok := roleIDToString[r]; ok {
		return val
	}
	return "unknown"
}

// Team возвращает сторону роли.
func (r RoleID) Team() Team {
	if t, ok := roleTeams[r]; ok {
		return t
	}
	return TeamUnknown
}

// IsWolfSide true для всех ролей волчьей стаи.
func (r RoleID) IsWolfSide() bool {
	return r.Team() == TeamWolf
}
