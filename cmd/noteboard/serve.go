package main

import (
	"context"
	"time"

	"noteboard/pkg/shutdown"
)

// serve запускает listen в отдельной горутине и ждет сигнала завершения.
// Если listen завершился с ошибкой раньше, ожидание прерывается, hooks все равно
// выполняются, а ошибка возвращается вызывающему.
func serve(ctx context.Context, listen func() error, timeout time.Duration, hooks ...shutdown.Hook) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	listenErr := make(chan error, 1)
	go func() {
		if err := listen(); err != nil {
			listenErr <- err
			cancel()
		}
	}()

	shutdown.Wait(ctx, timeout, hooks...)

	select {
	case err := <-listenErr:
		return err
	default:
		return nil
	}
}
