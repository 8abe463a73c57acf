// Package player содержит симуляцию воспроизведения: текущий трек, пауза, прогресс и перемотка
package player

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

const (
	// DefaultTickInterval - период таймера прогресса
	DefaultTickInterval = 100 * time.Millisecond
	// DefaultProgressStep - прирост прогресса за один тик, в процентах
	DefaultProgressStep = 0.5
	// DefaultVolume - громкость при запуске
	DefaultVolume = 75
)

// Status представляет текущий статус плеера
type Status struct {
	Track    *catalog.Track // Текущий трек, nil если ничего не выбрано
	Playing  bool           // Идет ли воспроизведение
	Progress float64        // Прогресс в процентах, 0..100
	Elapsed  time.Duration  // Прошедшее время
	Duration time.Duration  // Известная длительность трека, 0 если неизвестна
}

// Option настраивает плеер
type Option func(*Player)

// WithTickInterval задает период таймера прогресса
func WithTickInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.tickInterval = d
		}
	}
}

// WithProgressStep задает прирост прогресса за тик
func WithProgressStep(step float64) Option {
	return func(p *Player) {
		if step > 0 {
			p.progressStep = step
		}
	}
}

// WithVolume задает начальную громкость
func WithVolume(volume int) Option {
	return func(p *Player) {
		p.controls.Volume = clampVolume(volume)
	}
}

// Player управляет симулированным воспроизведением треков.
// Одновременно активен не более одного таймера прогресса.
type Player struct {
	mutex sync.RWMutex

	tickInterval time.Duration
	progressStep float64

	currentTrack *catalog.Track
	isPlaying    bool
	progress     float64
	elapsed      time.Duration
	duration     time.Duration

	// stop закрывается для остановки активного таймера; nil - таймер не запущен
	stop chan struct{}

	controls Controls
	liked    map[string]bool

	subscribers map[*Subscription]struct{}
	closed      bool
}

// New создает новый экземпляр плеера
func New(opts ...Option) *Player {
	p := &Player{
		tickInterval: DefaultTickInterval,
		progressStep: DefaultProgressStep,
		controls:     Controls{Volume: DefaultVolume},
		liked:        make(map[string]bool),
		subscribers:  make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play начинает воспроизведение трека.
// Если трек отличается от текущего, прогресс и время сбрасываются.
func (p *Player) Play(track catalog.Track) {
	p.mutex.Lock()
	if p.closed {
		p.mutex.Unlock()
		return
	}

	if p.currentTrack == nil || p.currentTrack.ID != track.ID {
		t := track
		p.currentTrack = &t
		p.progress = 0
		p.elapsed = 0
		p.duration = time.Duration(track.DurationSeconds() * float64(time.Second))
	}
	p.isPlaying = true

	// Перезапускаем таймер, чтобы не оставить второй активный
	p.startTimerLocked()
	status := p.statusLocked()
	p.mutex.Unlock()

	p.broadcast(status)
}

// TogglePlayPause ставит на паузу или возобновляет текущий трек.
// Без текущего трека ничего не делает.
func (p *Player) TogglePlayPause() {
	p.mutex.RLock()
	track := p.currentTrack
	playing := p.isPlaying
	p.mutex.RUnlock()

	if track == nil {
		return
	}
	if playing {
		p.Pause()
		return
	}
	p.Play(*track)
}

// Pause останавливает таймер прогресса. Если трек не играет, ничего не делает.
func (p *Player) Pause() {
	p.mutex.Lock()
	if !p.isPlaying {
		p.mutex.Unlock()
		return
	}
	p.isPlaying = false
	p.stopTimerLocked()
	status := p.statusLocked()
	p.mutex.Unlock()

	p.broadcast(status)
}

// Seek перематывает текущий трек на указанный процент.
// Значение ограничивается диапазоном 0..100. Без известной длительности ничего не делает.
func (p *Player) Seek(percentage float64) {
	p.mutex.Lock()
	if p.currentTrack == nil || p.duration <= 0 || math.IsNaN(percentage) {
		p.mutex.Unlock()
		return
	}

	percentage = math.Max(0, math.Min(100, percentage))
	p.progress = percentage
	p.elapsed = time.Duration(percentage / 100 * float64(p.duration))
	status := p.statusLocked()
	p.mutex.Unlock()

	p.broadcast(status)
}

// Status возвращает снимок состояния плеера
func (p *Player) Status() Status {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.statusLocked()
}

// CurrentTrack возвращает копию текущего трека
func (p *Player) CurrentTrack() *catalog.Track {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.currentTrack == nil {
		return nil
	}
	t := *p.currentTrack
	return &t
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Player) IsPlaying() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.isPlaying
}

// Close останавливает таймер и закрывает все подписки
func (p *Player) Close() error {
	p.mutex.Lock()
	if p.closed {
		p.mutex.Unlock()
		return nil
	}
	p.closed = true
	p.isPlaying = false
	p.stopTimerLocked()
	subs := p.subscribers
	p.subscribers = make(map[*Subscription]struct{})
	p.mutex.Unlock()

	for s := range subs {
		s.close()
	}
	return nil
}

// startTimerLocked запускает таймер прогресса (должен вызываться под мьютексом)
func (p *Player) startTimerLocked() {
	p.stopTimerLocked()

	stop := make(chan struct{})
	p.stop = stop
	go p.run(stop, p.tickInterval)
}

// stopTimerLocked останавливает активный таймер (должен вызываться под мьютексом)
func (p *Player) stopTimerLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// timerActive сообщает, запущен ли таймер прогресса
func (p *Player) timerActive() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.stop != nil
}

func (p *Player) run(stop chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !p.advance(stop) {
				return
			}
		}
	}
}

// advance выполняет один тик таймера. Возвращает false, если таймер должен завершиться.
func (p *Player) advance(stop chan struct{}) bool {
	p.mutex.Lock()
	// Таймер мог быть заменен или остановлен между тиками
	if p.stop != stop || !p.isPlaying || p.currentTrack == nil {
		p.mutex.Unlock()
		return false
	}

	p.progress += p.progressStep
	p.elapsed += p.tickInterval

	if p.progress < 100 {
		status := p.statusLocked()
		p.mutex.Unlock()
		p.broadcast(status)
		return true
	}

	// Трек закончился: таймер останавливается, состояние сбрасывается
	finished := *p.currentTrack
	p.stop = nil
	p.isPlaying = false
	p.progress = 0
	p.elapsed = 0
	status := p.statusLocked()
	p.mutex.Unlock()

	p.broadcast(status)
	p.broadcastFinished(finished)
	return false
}

func (p *Player) statusLocked() Status {
	s := Status{
		Playing:  p.isPlaying,
		Progress: p.progress,
		Elapsed:  p.elapsed,
		Duration: p.duration,
	}
	if p.currentTrack != nil {
		t := *p.currentTrack
		s.Track = &t
	}
	return s
}

// FormatTime форматирует секунды в вид m:ss, отбрасывая дробную часть
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
