package engine

import (
	"encoding/json"
	"fmt"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/infrastructure/storage"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
)

// ReplayFromStore прогоняет журнал комнаты через свежий конвейер и
// возвращает финальную проекцию. Хост и шаблон берутся из снимка.
//
// Случайность (раздача ролей, пьяная провидица) перебрасывается заново:
// реплей воспроизводит ход конвейера, а не исходные броски.
func ReplayFromStore(store *storage.SQLiteStore, roomCode string) (api.StateView, error) {
	raw, err := store.LoadSnapshot(roomCode)
	if err != nil {
		return api.StateView{}, err
	}
	if raw == nil {
		return api.StateView{}, fmt.Errorf("no snapshot for room %s", roomCode)
	}

	var snapshot domain.GameState
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return api.StateView{}, fmt.Errorf("decode snapshot: %w", err)
	}

	entries, err := store.ListIntents(roomCode)
	if err != nil {
		return api.StateView{}, err
	}

	// Свежий сервис без хранилища: реплей не должен дописывать журнал
	service := NewService(nil)
	room := newRoom(snapshot.RoomCode, snapshot.HostUID, snapshot.TemplateRoles, service)
	go room.run()
	defer room.stop()

	log := logger.Log.WithField("room", roomCode)
	log.Infof("Replaying %d intents", len(entries))

	for _, entry := range entries {
		intent := domain.Intent{
			Type:    domain.ParseIntent(entry.IntentType),
			UID:     entry.UID,
			Payload: entry.Payload,
		}
		outcome := room.Submit(intent)
		if !outcome.Success {
			log.WithField("intent", entry.IntentType).
				WithField("reason", outcome.Reason).
				Warn("Journaled intent rejected on replay")
		}
	}

	return room.Snapshot(), nil
}
