package main

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// enableRawMode включает режим raw для терминала (без буферизации и echo)
func enableRawMode() {
	cmd := exec.Command("stty", "-echo", "-icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run() // Без stty плеер работает, но клавиши читаются после Enter
}

// disableRawMode восстанавливает нормальный режим терминала
func disableRawMode() {
	cmd := exec.Command("stty", "echo", "icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run()
}

// readKeys читает клавиши из r по одному байту.
// Канал закрывается при ошибке чтения. После отмены ctx горутина
// завершается на следующем прочитанном байте, не дожидаясь получателя.
func readKeys(ctx context.Context, r io.Reader) <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		buffer := make([]byte, 1)
		for {
			if _, err := r.Read(buffer); err != nil {
				return
			}
			select {
			case keys <- buffer[0]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return keys
}
