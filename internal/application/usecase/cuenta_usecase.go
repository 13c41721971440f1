package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/shopspring/decimal"
)

// Estados de cuenta corriente.
const (
	CuentaAlDia    = "Al día"
	CuentaConDeuda = "Con deuda"
)

// CuentaUseCase cuentas corrientes de clientes.
type CuentaUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           vencimiento.Reloj
}

// NewCuentaUseCase construye el caso de uso.
func NewCuentaUseCase(analyticsRepo repository.AnalyticsRepository, now vencimiento.Reloj) *CuentaUseCase {
	return &CuentaUseCase{analyticsRepo: analyticsRepo, now: now}
}

// List deuda y último pago de cada cliente, más los totales de la pantalla.
func (uc *CuentaUseCase) List(ctx context.Context, query string) (*dto.CuentasResponse, error) {
	cuentas, err := uc.analyticsRepo.Cuentas(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	desde, hasta := vencimiento.Mes(uc.now())
	pagosMes, err := uc.analyticsRepo.Cobrado(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	out := &dto.CuentasResponse{
		Items:      make([]dto.CuentaDTO, 0, len(cuentas)),
		DeudaTotal: decimal.Zero,
		PagosMes:   pagosMes,
	}
	for _, c := range cuentas {
		item := dto.CuentaDTO{
			ClienteID:       c.ClienteID,
			Cliente:         c.ClienteNombre,
			DeudaTotal:      c.Deuda,
			MontoUltimoPago: c.MontoUltimoPago,
			Estado:          CuentaAlDia,
		}
		if c.UltimoPago != nil {
			item.UltimoPago = formatFecha(*c.UltimoPago)
		}
		if c.Deuda.IsPositive() {
			item.Estado = CuentaConDeuda
			out.ClientesConDeuda++
			out.DeudaTotal = out.DeudaTotal.Add(c.Deuda)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
