package domain

import (
	"encoding/json"
	"strings"
)

// IntentType - Внутренний числовой идентификатор намерения игрока
type IntentType uint8

const (
	IntentUnknown IntentType = iota
	IntentJoinSeat
	IntentLeaveMySeat
	IntentUpdateTemplate
	IntentAssignRoles
	IntentStartNight
	IntentSubmitAction
	IntentSubmitWolfVote
	IntentViewedRole
	IntentAdvanceNight
	IntentEndNight
	IntentRestartGame
	IntentShareNightReview
	IntentAckReveal
	IntentSetWolfRobotHunterStatusViewed
	IntentSetAudioPlaying
)

// Маппинг для конвертации JSON -> Domain
var intentStringToType = map[string]IntentType{
	"JOIN_SEAT":                           IntentJoinSeat,
	"LEAVE_MY_SEAT":                       IntentLeaveMySeat,
	"UPDATE_TEMPLATE":                     IntentUpdateTemplate,
	"ASSIGN_ROLES":                        IntentAssignRoles,
	"START_NIGHT":                         IntentStartNight,
	"SUBMIT_ACTION":                       IntentSubmitAction,
	"SUBMIT_WOLF_VOTE":                    IntentSubmitWolfVote,
	"VIEWED_ROLE":                         IntentViewedRole,
	"ADVANCE_NIGHT":                       IntentAdvanceNight,
	"END_NIGHT":                           IntentEndNight,
	"RESTART_GAME":                        IntentRestartGame,
	"SHARE_NIGHT_REVIEW":                  IntentShareNightReview,
	"ACK_REVEAL":                          IntentAckReveal,
	"SET_WOLF_ROBOT_HUNTER_STATUS_VIEWED": IntentSetWolfRobotHunterStatusViewed,
	"SET_AUDIO_PLAYING":                   IntentSetAudioPlaying,
}

// Маппинг для логов Domain -> String
var intentTypeToString = func() map[IntentType]string {
	m := make(map[IntentType]string, len(intentStringToType))
	for s, t := range intentStringToType {
		m[t] = s
	}
	return m
}()

// ParseIntent конвертирует строку из JSON в IntentType
func ParseIntent(s string) IntentType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := intentStringToType[upper]; ok {
		return val
	}
	return IntentUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t IntentType) String() string {
	if val, ok := intentTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Intent - намерение игрока, уже прошедшее транспорт:
// аутентифицированный uid и признак хоста навешаны транспортным слоем.
// Payload несет только поля, нужные для воспроизведения запроса,
// ничего производного; парсится конкретным хендлером.
type Intent struct {
	Type    IntentType      `json:"type"`
	UID     string          `json:"uid"`
	IsHost  bool            `json:"isHost"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
