package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(recurso string) error {
	return fmt.Errorf("%s: %w", recurso, domain.ErrNotFound)
}

// parseFecha interpreta YYYY-MM-DD como fecha calendario (medianoche UTC).
func parseFecha(campo, s string) (time.Time, error) {
	t, err := time.Parse(dto.LayoutFecha, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, invalid("%s debe tener formato AAAA-MM-DD", campo)
	}
	return t, nil
}

func formatFecha(t time.Time) string {
	return t.Format(dto.LayoutFecha)
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		CUIT:      c.CUIT,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func toClienteContacto(c *entity.Cliente) dto.ClienteContactoDTO {
	return dto.ClienteContactoDTO{
		ID:        c.ID,
		Nombre:    c.Nombre,
		CUIT:      c.CUIT,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}

func toBanoResponse(b *entity.Bano) dto.BanoResponse {
	return dto.BanoResponse{
		ID:            b.ID,
		Estado:        b.Estado,
		Ubicacion:     b.Ubicacion,
		Observaciones: b.Observaciones,
		CreatedAt:     b.CreatedAt,
	}
}

func toContratoResponse(c *entity.Contrato) dto.ContratoResponse {
	return dto.ContratoResponse{
		ID:               c.ID,
		ClienteID:        c.ClienteID,
		FechaInicio:      formatFecha(c.FechaInicio),
		FechaFin:         formatFecha(c.FechaFin),
		ValorDiario:      c.ValorDiario,
		DireccionEntrega: c.DireccionEntrega,
		Observaciones:    c.Observaciones,
	}
}

func toContratoRef(c *entity.Contrato) *dto.ContratoRefDTO {
	if c == nil {
		return nil
	}
	return &dto.ContratoRefDTO{ID: c.ID, FechaInicio: formatFecha(c.FechaInicio), FechaFin: formatFecha(c.FechaFin)}
}

func toFacturaResponse(f *entity.Factura, hoy time.Time) dto.FacturaResponse {
	return dto.FacturaResponse{
		ID:             f.ID,
		ClienteID:      f.ClienteID,
		ContratoID:     f.ContratoID,
		Fecha:          formatFecha(f.Fecha),
		Monto:          f.Monto,
		Estado:         f.Estado,
		Vencimiento:    formatFecha(vencimiento.VencimientoFactura(f.Fecha)),
		DiasParaVencer: vencimiento.DiasParaVencer(f.Fecha, hoy),
		Vencida:        vencimiento.FacturaVencida(f.Estado, f.Fecha, hoy),
	}
}

func toFacturaResumen(f *entity.Factura) *dto.FacturaResumenDTO {
	if f == nil {
		return nil
	}
	return &dto.FacturaResumenDTO{ID: f.ID, Fecha: formatFecha(f.Fecha), Monto: f.Monto, Estado: f.Estado}
}

func toRemitoResponse(r *entity.Remito) dto.RemitoResponse {
	return dto.RemitoResponse{
		ID:            r.ID,
		ClienteID:     r.ClienteID,
		ContratoID:    r.ContratoID,
		Fecha:         formatFecha(r.Fecha),
		Tipo:          r.Tipo,
		Cantidad:      r.Cantidad,
		Observaciones: r.Observaciones,
	}
}

func toPagoResponse(p *entity.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:            p.ID,
		ClienteID:     p.ClienteID,
		FacturaID:     p.FacturaID,
		RemitoID:      p.RemitoID,
		Fecha:         formatFecha(p.Fecha),
		Monto:         p.Monto,
		MetodoPago:    p.MetodoPago,
		Comprobante:   p.Comprobante,
		Observaciones: p.Observaciones,
	}
}
