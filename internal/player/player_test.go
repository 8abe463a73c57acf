package player

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

var (
	testTrack = catalog.Track{
		ID:       "1",
		Title:    "Test Title",
		Artist:   "Test Artist",
		Duration: "3:20",
	}
	otherTrack = catalog.Track{
		ID:       "2",
		Title:    "Other Title",
		Artist:   "Other Artist",
		Duration: "4:00",
	}
)

func TestPlaySetsCurrentTrack(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		if p.CurrentTrack() != nil {
			t.Fatal("Текущий трек должен отсутствовать до начала воспроизведения")
		}

		p.Play(testTrack)

		current := p.CurrentTrack()
		if current == nil || current.ID != testTrack.ID {
			t.Fatalf("Ожидался трек %s, получен %v", testTrack.ID, current)
		}
		if !p.IsPlaying() {
			t.Error("Плеер должен воспроизводить после Play")
		}

		status := p.Status()
		if status.Duration != 200*time.Second {
			t.Errorf("Ожидалась длительность 200s, получено %v", status.Duration)
		}
		if status.Progress != 0 || status.Elapsed != 0 {
			t.Errorf("Прогресс нового трека должен быть нулевым: %+v", status)
		}
	})
}

func TestToggleTwiceKeepsTrackPlaying(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Play(testTrack)
		p.TogglePlayPause()
		if p.IsPlaying() {
			t.Error("Плеер должен быть на паузе после первого переключения")
		}

		p.TogglePlayPause()
		if !p.IsPlaying() {
			t.Error("Плеер должен воспроизводить после второго переключения")
		}
		if p.CurrentTrack().ID != testTrack.ID {
			t.Errorf("Текущий трек изменился: %s", p.CurrentTrack().ID)
		}
	})
}

func TestToggleWithoutTrackIsNoop(t *testing.T) {
	p := New()
	defer p.Close()

	p.TogglePlayPause()

	if p.IsPlaying() {
		t.Error("Без текущего трека переключение не должно запускать воспроизведение")
	}
	if p.timerActive() {
		t.Error("Без текущего трека таймер не должен запускаться")
	}
}

func TestProgressAdvances(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Play(testTrack)
		time.Sleep(time.Second)
		synctest.Wait()

		status := p.Status()
		if status.Progress != 5 {
			t.Errorf("Ожидался прогресс 5%%, получено %v", status.Progress)
		}
		if status.Elapsed != time.Second {
			t.Errorf("Ожидалось прошедшее время 1s, получено %v", status.Elapsed)
		}
	})
}

func TestPauseStopsProgress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Play(testTrack)
		time.Sleep(500 * time.Millisecond)
		synctest.Wait()

		p.TogglePlayPause()
		if p.timerActive() {
			t.Error("Таймер должен быть остановлен на паузе")
		}
		paused := p.Status().Progress

		time.Sleep(2 * time.Second)
		synctest.Wait()

		if got := p.Status().Progress; got != paused {
			t.Errorf("Прогресс изменился на паузе: %v -> %v", paused, got)
		}

		// Возобновление продолжает с той же позиции
		p.TogglePlayPause()
		time.Sleep(time.Second)
		synctest.Wait()

		if got := p.Status().Progress; got != paused+5 {
			t.Errorf("Ожидался прогресс %v, получено %v", paused+5, got)
		}
	})
}

func TestEndOfTrackResetsState(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()
		sub := p.Subscribe()

		p.Play(testTrack)
		time.Sleep(20 * time.Second)
		synctest.Wait()

		status := p.Status()
		if status.Playing {
			t.Error("После окончания трека воспроизведение должно остановиться")
		}
		if status.Progress != 0 || status.Elapsed != 0 {
			t.Errorf("После окончания трека прогресс должен сброситься: %+v", status)
		}
		if p.timerActive() {
			t.Error("После окончания трека таймер должен быть остановлен")
		}

		select {
		case finished := <-sub.Finished:
			if finished.ID != testTrack.ID {
				t.Errorf("Ожидалось завершение трека %s, получено %s", testTrack.ID, finished.ID)
			}
		default:
			t.Error("Подписчик не получил событие окончания трека")
		}

		// Конечное состояние не меняется со временем
		time.Sleep(5 * time.Second)
		synctest.Wait()
		if got := p.Status(); got.Playing || got.Progress != 0 {
			t.Errorf("Конечное состояние изменилось: %+v", got)
		}
	})
}

func TestPlayDifferentTrackResetsProgress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Play(testTrack)
		time.Sleep(time.Second)
		synctest.Wait()

		// Повторный запуск того же трека сохраняет прогресс
		p.Play(testTrack)
		if got := p.Status().Progress; got != 5 {
			t.Errorf("Прогресс того же трека должен сохраниться, получено %v", got)
		}

		p.Play(otherTrack)
		status := p.Status()
		if status.Track.ID != otherTrack.ID {
			t.Errorf("Ожидался трек %s, получен %s", otherTrack.ID, status.Track.ID)
		}
		if status.Progress != 0 || status.Elapsed != 0 {
			t.Errorf("Прогресс нового трека должен сброситься: %+v", status)
		}
		if status.Duration != 240*time.Second {
			t.Errorf("Ожидалась длительность 240s, получено %v", status.Duration)
		}
	})
}

func TestRestartKeepsSingleTimer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Play(testTrack)
		p.Play(testTrack)
		p.Play(testTrack)

		time.Sleep(time.Second)
		synctest.Wait()

		// Три активных таймера дали бы 15%
		if got := p.Status().Progress; got != 5 {
			t.Errorf("Ожидался прогресс 5%% от одного таймера, получено %v", got)
		}
	})
}

func TestSeek(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Play(testTrack)
		p.Pause()

		tests := []struct {
			percentage      float64
			expectedPercent float64
			expectedElapsed time.Duration
		}{
			{25, 25, 50 * time.Second},
			{0, 0, 0},
			{100, 100, 200 * time.Second},
			{150, 100, 200 * time.Second},
			{-10, 0, 0},
			{12.5, 12.5, 25 * time.Second},
		}

		for _, test := range tests {
			p.Seek(test.percentage)
			status := p.Status()
			if status.Progress != test.expectedPercent {
				t.Errorf("Seek(%v): прогресс %v, ожидалось %v", test.percentage, status.Progress, test.expectedPercent)
			}
			if status.Elapsed != test.expectedElapsed {
				t.Errorf("Seek(%v): время %v, ожидалось %v", test.percentage, status.Elapsed, test.expectedElapsed)
			}
		}
	})
}

func TestSeekWithoutDurationIsNoop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		// Без текущего трека
		p.Seek(50)
		if got := p.Status().Progress; got != 0 {
			t.Errorf("Seek без трека изменил прогресс: %v", got)
		}

		// Трек с неизвестной длительностью
		p.Play(catalog.Track{ID: "x", Title: "Unknown"})
		p.Pause()
		p.Seek(50)
		if got := p.Status(); got.Progress != 0 || got.Elapsed != 0 {
			t.Errorf("Seek без известной длительности изменил состояние: %+v", got)
		}
	})
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{59.9, "0:59"},
		{600, "10:00"},
		{3725, "62:05"},
		{-3, "0:00"},
	}

	for _, test := range tests {
		result := FormatTime(test.seconds)
		if result != test.expected {
			t.Errorf("FormatTime(%v) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestSubscriptionReceivesUpdates(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		sub := p.Subscribe()

		p.Play(testTrack)

		select {
		case status := <-sub.Updates:
			if !status.Playing || status.Track == nil || status.Track.ID != testTrack.ID {
				t.Errorf("Неожиданный статус: %+v", status)
			}
		default:
			t.Fatal("Подписчик не получил статус после Play")
		}

		p.Close()
		<-sub.Done

		// После закрытия новые подписки сразу закрыты
		<-p.Subscribe().Done
	})
}

func TestUnsubscribe(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		defer p.Close()

		sub := p.Subscribe()
		p.Unsubscribe(sub)
		<-sub.Done

		p.Play(testTrack)
		select {
		case <-sub.Updates:
			t.Error("Отписанный подписчик получил обновление")
		default:
		}
	})
}

func TestCustomTickOptions(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New(WithTickInterval(time.Second), WithProgressStep(10))
		defer p.Close()

		p.Play(testTrack)
		time.Sleep(3 * time.Second)
		synctest.Wait()

		status := p.Status()
		if status.Progress != 30 || status.Elapsed != 3*time.Second {
			t.Errorf("Неожиданный статус: %+v", status)
		}
	})
}

func TestCloseStopsPlayback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := New()
		p.Play(testTrack)

		if err := p.Close(); err != nil {
			t.Fatalf("Ошибка закрытия плеера: %v", err)
		}
		if p.IsPlaying() || p.timerActive() {
			t.Error("После закрытия плеер не должен воспроизводить")
		}

		// Повторное закрытие безопасно, Play после закрытия игнорируется
		_ = p.Close()
		p.Play(otherTrack)
		if p.IsPlaying() {
			t.Error("Play после закрытия не должен запускать воспроизведение")
		}
	})
}
