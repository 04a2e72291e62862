package core

import (
	"sync"

	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// Broadcaster занимается только рассылкой проекций состояния подписчикам
// одной комнаты. Подписчики - read-only зеркала (клиенты).
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan api.StateView]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan api.StateView]bool),
	}
}

// Subscribe создает канал для нового клиента
func (b *Broadcaster) Subscribe() chan api.StateView {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan api.StateView, 16)
	b.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет клиента
func (b *Broadcaster) Unsubscribe(ch chan api.StateView) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Broadcast отправляет проекцию всем
func (b *Broadcaster) Broadcast(view api.StateView) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- view:
		default:
			// Пропускаем медленных клиентов
		}
	}
}

// SubscriberCount - число живых подписчиков (для отладочных ручек).
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
