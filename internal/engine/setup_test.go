package engine

import (
	"os"
	"testing"

	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
)

func TestMain(m *testing.M) {
	// Цикл комнаты и сервис пишут в глобальный логгер
	logger.Init()

	os.Exit(m.Run())
}
