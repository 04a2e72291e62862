package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers/intents"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
)

// Store - контракт хранилища, исполняющего директиву SAVE_STATE и
// ведущего журнал принятых намерений для аудита/реплея.
type Store interface {
	SaveSnapshot(roomCode string, state []byte) error
	AppendIntent(roomCode string, uid string, intentType string, payload []byte) error
}

// GameService владеет комнатами и реестром хендлеров намерений.
type GameService struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	store Store

	handlers map[domain.IntentType]handlers.HandlerFunc
}

// NewService создает сервис. store может быть nil (реплей, тесты) -
// тогда директива SAVE_STATE исполняется вхолостую.
func NewService(store Store) *GameService {
	s := &GameService{
		rooms:    make(map[string]*Room),
		store:    store,
		handlers: make(map[domain.IntentType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.IntentJoinSeat] = handlers.WithPayload(intents.HandleJoinSeat)
	s.handlers[domain.IntentLeaveMySeat] = handlers.WithEmptyPayload(intents.HandleLeaveMySeat)
	s.handlers[domain.IntentUpdateTemplate] = handlers.WithPayload(intents.HandleUpdateTemplate)
	s.handlers[domain.IntentAssignRoles] = handlers.WithEmptyPayload(intents.HandleAssignRoles)
	s.handlers[domain.IntentStartNight] = handlers.WithEmptyPayload(intents.HandleStartNight)
	s.handlers[domain.IntentSubmitAction] = handlers.WithPayload(intents.HandleSubmitAction)
	s.handlers[domain.IntentSubmitWolfVote] = handlers.WithPayload(intents.HandleSubmitWolfVote)
	s.handlers[domain.IntentViewedRole] = handlers.WithPayload(intents.HandleViewedRole)
	s.handlers[domain.IntentAdvanceNight] = handlers.WithEmptyPayload(intents.HandleAdvanceNight)
	s.handlers[domain.IntentEndNight] = handlers.WithEmptyPayload(intents.HandleEndNight)
	s.handlers[domain.IntentRestartGame] = handlers.WithEmptyPayload(intents.HandleRestartGame)
	s.handlers[domain.IntentShareNightReview] = handlers.WithPayload(intents.HandleShareNightReview)
	s.handlers[domain.IntentAckReveal] = handlers.WithPayload(intents.HandleAckReveal)
	s.handlers[domain.IntentSetWolfRobotHunterStatusViewed] = handlers.WithEmptyPayload(intents.HandleSetWolfRobotHunterStatusViewed)
	s.handlers[domain.IntentSetAudioPlaying] = handlers.WithPayload(intents.HandleSetAudioPlaying)
}

// CreateRoom создает комнату с данным шаблоном и запускает её цикл.
func (s *GameService) CreateRoom(hostUID string, template []domain.RoleID) (*Room, error) {
	if hostUID == "" {
		return nil, fmt.Errorf("host uid is required")
	}
	if len(template) == 0 {
		return nil, fmt.Errorf("template is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.newRoomCodeLocked()
	room := newRoom(code, hostUID, template, s)
	s.rooms[code] = room
	go room.run()

	logger.Log.WithField("room", code).Info("Room created")
	return room, nil
}

// GetRoom находит комнату по коду.
func (s *GameService) GetRoom(code string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[strings.ToUpper(code)]
	return room, ok
}

// CloseRoom останавливает цикл комнаты и убирает её из реестра.
func (s *GameService) CloseRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[code]; ok {
		room.stop()
		delete(s.rooms, code)
	}
}

// RoomCodes перечисляет живые комнаты (для отладочных ручек).
func (s *GameService) RoomCodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.rooms))
	for code := range s.rooms {
		codes = append(codes, code)
	}
	return codes
}

// newRoomCodeLocked генерирует короткий код комнаты, уникальный среди живых.
func (s *GameService) newRoomCodeLocked() string {
	for {
		code := strings.ToUpper(uuid.NewString()[:6])
		if _, taken := s.rooms[code]; !taken {
			return code
		}
	}
}
