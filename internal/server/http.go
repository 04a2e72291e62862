package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine/handlers/intents"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/version"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
)

type Server struct {
	Game *engine.GameService
	Port string
}

func New(game *engine.GameService, port string) *Server {
	return &Server{
		Game: game,
		Port: port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/rooms", enableCORS(s.handleCreateRoom))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/debug/rooms", enableCORS(s.handleDebugRooms))

	logger.Log.Infof("🐺 Werewolf Judge Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// handleWS подключает зеркало к комнате: /ws?room=CODE&uid=UID
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("room")
	room, ok := s.Game.GetRoom(code)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(room, conn, r.URL.Query().Get("uid"))

	go client.writePump()
	go client.readPump()
}

// handleCreateRoom создает комнату: POST /rooms
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req api.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	template, ok := intents.ParseTemplate(req.Roles, req.Preset)
	if !ok {
		http.Error(w, "invalid template", http.StatusBadRequest)
		return
	}

	room, err := s.Game.CreateRoom(req.HostUID, template)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(api.CreateRoomResponse{RoomCode: room.Code}); err != nil {
		logger.Log.WithError(err).Warn("failed to write create room response")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("failed to write health response")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Get()); err != nil {
		logger.Log.WithError(err).Debug("failed to write version response")
	}
}

// handleDebugRooms - отладочная ручка: живые комнаты и число зеркал.
func (s *Server) handleDebugRooms(w http.ResponseWriter, r *http.Request) {
	rooms := make(map[string]int)
	for _, code := range s.Game.RoomCodes() {
		if room, ok := s.Game.GetRoom(code); ok {
			rooms[code] = room.Hub.SubscriberCount()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"rooms": rooms,
	}); err != nil {
		logger.Log.WithError(err).Debug("failed to write debug rooms response")
	}
}
