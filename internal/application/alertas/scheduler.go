package alertas

import (
	"context"
	"time"
)

// RunPeriodic ejecuta Generar cada interval hasta que ctx se cancele.
// Un error en una pasada se registra y no detiene las siguientes.
func (uc *UseCase) RunPeriodic(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.log.Info().Dur("interval", interval).Msg("generación periódica de alertas activa")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Generar(ctx); err != nil && ctx.Err() == nil {
				uc.log.Error().Err(err).Msg("generación periódica de alertas")
			}
		}
	}
}
