package player

// Controls хранит настройки панели плеера
type Controls struct {
	Volume  int // Громкость 0..100
	Muted   bool
	Shuffle bool
	Repeat  bool
}

// Controls возвращает текущие настройки панели
func (p *Player) Controls() Controls {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.controls
}

// SetVolume задает громкость. Ненулевая громкость снимает режим без звука.
func (p *Player) SetVolume(volume int) int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.controls.Volume = clampVolume(volume)
	if p.controls.Volume > 0 && p.controls.Muted {
		p.controls.Muted = false
	}
	return p.controls.Volume
}

// ToggleMute включает или выключает звук
func (p *Player) ToggleMute() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.controls.Muted = !p.controls.Muted
	return p.controls.Muted
}

// EffectiveVolume возвращает слышимую громкость с учетом режима без звука
func (p *Player) EffectiveVolume() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.controls.Muted {
		return 0
	}
	return p.controls.Volume
}

// ToggleShuffle переключает режим случайного порядка
func (p *Player) ToggleShuffle() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.controls.Shuffle = !p.controls.Shuffle
	return p.controls.Shuffle
}

// ToggleRepeat переключает режим повтора
func (p *Player) ToggleRepeat() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.controls.Repeat = !p.controls.Repeat
	return p.controls.Repeat
}

// ToggleLike отмечает текущий трек как понравившийся или снимает отметку.
// Возвращает новое значение и false, если текущего трека нет.
func (p *Player) ToggleLike() (liked bool, ok bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.currentTrack == nil {
		return false, false
	}
	id := p.currentTrack.ID
	if p.liked[id] {
		delete(p.liked, id)
		return false, true
	}
	p.liked[id] = true
	return true, true
}

// IsLiked сообщает, отмечен ли трек как понравившийся
func (p *Player) IsLiked(trackID string) bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.liked[trackID]
}

func clampVolume(volume int) int {
	return max(0, min(100, volume))
}
