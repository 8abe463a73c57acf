package player

import (
	"sync"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

const eventBufferSize = 16

// Subscription предоставляет каналы событий плеера для одного подписчика
type Subscription struct {
	Updates  <-chan Status        // Изменения состояния и тики прогресса
	Finished <-chan catalog.Track // Трек доиграл до конца
	Done     <-chan struct{}      // Закрывается при отписке или закрытии плеера

	updateCh   chan Status
	finishedCh chan catalog.Track
	doneCh     chan struct{}
	once       sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		updateCh:   make(chan Status, eventBufferSize),
		finishedCh: make(chan catalog.Track, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.Updates = s.updateCh
	s.Finished = s.finishedCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.doneCh) })
}

// sendUpdate отправляет статус без блокировки
func (s *Subscription) sendUpdate(status Status) {
	select {
	case s.updateCh <- status:
	default:
		// Подписчик не успевает читать: пропускаем тик
	}
}

func (s *Subscription) sendFinished(track catalog.Track) {
	select {
	case s.finishedCh <- track:
	default:
	}
}

// Subscribe создает подписку на события плеера.
// Для закрытого плеера возвращает уже закрытую подписку.
func (p *Player) Subscribe() *Subscription {
	s := newSubscription()

	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.closed {
		s.close()
		return s
	}
	p.subscribers[s] = struct{}{}
	return s
}

// Unsubscribe отменяет подписку
func (p *Player) Unsubscribe(s *Subscription) {
	p.mutex.Lock()
	delete(p.subscribers, s)
	p.mutex.Unlock()
	s.close()
}

func (p *Player) snapshotSubscribers() []*Subscription {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	subs := make([]*Subscription, 0, len(p.subscribers))
	for s := range p.subscribers {
		subs = append(subs, s)
	}
	return subs
}

func (p *Player) broadcast(status Status) {
	for _, s := range p.snapshotSubscribers() {
		s.sendUpdate(status)
	}
}

func (p *Player) broadcastFinished(track catalog.Track) {
	for _, s := range p.snapshotSubscribers() {
		s.sendFinished(track)
	}
}
