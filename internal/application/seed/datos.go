package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/pkg/moneda"
)

// dataset juego de datos listo para insertar. ClienteID de cada fila es la posición
// (desde 1) del cliente en clientes.
type dataset struct {
	nombre       string
	mensaje      string
	clientes     []entity.Cliente
	banos        []entity.Bano
	contratos    []entity.Contrato
	asignaciones []entity.BanoContrato
	facturas     []entity.Factura
	remitos      []entity.Remito
	pagos        []entity.Pago
	alertas      []entity.Alerta
}

// Posiciones de los clientes en clientesEjemplo.
const (
	constructoraABC = iota + 1
	eventosXYZ
	municipalidadSanMartin
	construccionDEF
	productoraMNO
	edificiosSA
	corporativosSRL
	municipalidadTigre
)

var clientesEjemplo = []entity.Cliente{
	{Nombre: "Constructora ABC", CUIT: "30-12345678-9", Telefono: "11-2345-6789", Direccion: "Av. Rivadavia 1234, CABA"},
	{Nombre: "Eventos XYZ", CUIT: "30-87654321-0", Telefono: "11-8765-4321", Direccion: "Calle San Martín 567, San Isidro"},
	{Nombre: "Municipalidad de San Martín", CUIT: "30-99887766-5", Telefono: "11-5555-5555", Direccion: "Belgrano 3200, San Martín"},
	{Nombre: "Empresa de Construcción DEF", CUIT: "30-55443322-1", Telefono: "11-4444-3333", Direccion: "Corrientes 2500, CABA"},
	{Nombre: "Productora de Eventos MNO", CUIT: "30-11223344-5", Telefono: "11-7777-8888", Direccion: "Libertador 5400, Vicente López"},
	{Nombre: "Constructora Edificios SA", CUIT: "30-22334455-6", Telefono: "11-6666-7777", Direccion: "Av. Cabildo 2500, CABA"},
	{Nombre: "Eventos Corporativos SRL", CUIT: "30-33445566-7", Telefono: "11-3333-2222", Direccion: "Av. del Libertador 3300, Vicente López"},
	{Nombre: "Municipalidad de Tigre", CUIT: "30-44556677-8", Telefono: "11-2222-1111", Direccion: "Av. Cazón 1500, Tigre"},
}

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pesos(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func banoID(n int) string { return fmt.Sprintf("B%03d", n) }

func alquilado(id string) entity.Bano {
	return entity.Bano{ID: id, Estado: entity.BanoAlquilado, Ubicacion: entity.UbicacionCliente}
}

func disponible(id string) entity.Bano {
	return entity.Bano{ID: id, Estado: entity.BanoDisponible, Ubicacion: entity.UbicacionDeposito}
}

// asignar asigna los baños al contrato con las fechas del contrato.
func asignar(c entity.Contrato, banos ...string) []entity.BanoContrato {
	out := make([]entity.BanoContrato, 0, len(banos))
	for _, id := range banos {
		out = append(out, entity.BanoContrato{BanoID: id, ContratoID: c.ID, FechaInicio: c.FechaInicio, FechaFin: c.FechaFin})
	}
	return out
}

// basico juego chico con fechas fijas de mayo 2023.
func basico() dataset {
	ds := dataset{
		nombre:   "basico",
		mensaje:  "Datos de ejemplo creados correctamente",
		clientes: clientesEjemplo[:5],
	}
	for _, id := range []string{"B001", "B002", "B003", "B010", "B011", "B020", "B021", "B022", "B023", "B024"} {
		ds.banos = append(ds.banos, alquilado(id))
	}
	for n := 30; n <= 39; n++ {
		ds.banos = append(ds.banos, disponible(banoID(n)))
	}

	c097 := entity.Contrato{ID: "C-2023-097", ClienteID: constructoraABC, FechaInicio: dia(2023, time.May, 1), FechaFin: dia(2023, time.June, 30),
		ValorDiario: pesos(1450), DireccionEntrega: "Av. Rivadavia 1234, CABA", Observaciones: "Contrato para obra en construcción"}
	c102 := entity.Contrato{ID: "C-2023-102", ClienteID: eventosXYZ, FechaInicio: dia(2023, time.April, 15), FechaFin: dia(2023, time.May, 15),
		ValorDiario: pesos(1600), DireccionEntrega: "Calle San Martín 567, San Isidro", Observaciones: "Evento corporativo"}
	c103 := entity.Contrato{ID: "C-2023-103", ClienteID: municipalidadSanMartin, FechaInicio: dia(2023, time.May, 10), FechaFin: dia(2023, time.August, 10),
		ValorDiario: pesos(1500), DireccionEntrega: "Belgrano 3200, San Martín", Observaciones: "Evento municipal"}
	ds.contratos = []entity.Contrato{c097, c102, c103}

	ds.asignaciones = append(ds.asignaciones, asignar(c097, "B001", "B002")...)
	// B003 se retiró antes de terminar el contrato.
	ds.asignaciones = append(ds.asignaciones, entity.BanoContrato{BanoID: "B003", ContratoID: c097.ID, FechaInicio: c097.FechaInicio, FechaFin: dia(2023, time.May, 10)})
	ds.asignaciones = append(ds.asignaciones, asignar(c102, "B010", "B011")...)
	ds.asignaciones = append(ds.asignaciones, asignar(c103, "B020", "B021", "B022", "B023", "B024")...)

	ds.facturas = []entity.Factura{
		{ID: "F-2023-042", ClienteID: constructoraABC, ContratoID: c097.ID, Fecha: dia(2023, time.May, 10), Monto: pesos(45000), Estado: entity.FacturaPendiente},
		{ID: "F-2023-041", ClienteID: constructoraABC, ContratoID: c097.ID, Fecha: dia(2023, time.May, 5), Monto: pesos(87000), Estado: entity.FacturaPendiente},
		{ID: "F-2023-040", ClienteID: eventosXYZ, ContratoID: c102.ID, Fecha: dia(2023, time.May, 1), Monto: pesos(64000), Estado: entity.FacturaPagada},
	}
	ds.remitos = []entity.Remito{
		{ID: "R-2023-056", ClienteID: constructoraABC, ContratoID: c097.ID, Fecha: dia(2023, time.May, 10), Tipo: entity.RemitoEntrega, Cantidad: 5},
		{ID: "R-2023-055", ClienteID: constructoraABC, ContratoID: c097.ID, Fecha: dia(2023, time.May, 5), Tipo: entity.RemitoRetiro, Cantidad: 8},
		{ID: "R-2023-054", ClienteID: eventosXYZ, ContratoID: c102.ID, Fecha: dia(2023, time.May, 1), Tipo: entity.RemitoEntrega, Cantidad: 12},
	}
	ds.alertas = []entity.Alerta{
		{Tipo: entity.AlertaPago, ClienteID: constructoraABC, Mensaje: "Pago vencido por " + moneda.Formato(pesos(45000)),
			Fecha: dia(2023, time.May, 12), Prioridad: entity.PrioridadAlta},
		{Tipo: entity.AlertaContrato, ClienteID: eventosXYZ, ContratoID: c102.ID, Mensaje: "Contrato vence en 5 días",
			Fecha: dia(2023, time.May, 10), Prioridad: entity.PrioridadMedia},
		{Tipo: entity.AlertaPago, ClienteID: municipalidadSanMartin, Mensaje: "Pago pendiente por " + moneda.Formato(pesos(28500)),
			Fecha: dia(2023, time.May, 14), Prioridad: entity.PrioridadAlta},
	}
	return ds
}

// completo juego grande con fechas relativas a hoy: contratos activos, uno vencido y
// dos por vencer (5 y 10 días).
func completo(hoy time.Time) dataset {
	ds := dataset{
		nombre:   "completo",
		mensaje:  "Datos de ejemplo completos creados correctamente",
		clientes: clientesEjemplo,
	}
	for n := 1; n <= 50; n++ {
		ds.banos = append(ds.banos, alquilado(banoID(n)))
	}
	for n := 51; n <= 100; n++ {
		ds.banos = append(ds.banos, disponible(banoID(n)))
	}

	var (
		hace3Meses = hoy.AddDate(0, -3, 0)
		hace2Meses = hoy.AddDate(0, -2, 0)
		hace1Mes   = hoy.AddDate(0, -1, 0)
		en1Mes     = hoy.AddDate(0, 1, 0)
		en2Meses   = hoy.AddDate(0, 2, 0)
		en3Meses   = hoy.AddDate(0, 3, 0)
		en5Dias    = hoy.AddDate(0, 0, 5)
		en10Dias   = hoy.AddDate(0, 0, 10)
	)
	anio := hoy.Year()
	contratoID := func(n int) string { return fmt.Sprintf("%s-%d-%03d", entity.PrefijoContrato, anio, n) }
	facturaID := func(n int) string { return fmt.Sprintf("%s-%d-%03d", entity.PrefijoFactura, anio, n) }
	remitoID := func(n int) string { return fmt.Sprintf("%s-%d-%03d", entity.PrefijoRemito, anio, n) }

	type plan struct {
		cliente          int64
		inicio, fin      time.Time
		valor            int64
		direccion, notas string
		banos            int
	}
	planes := []plan{
		{constructoraABC, hace3Meses, en1Mes, 1450, "Av. Rivadavia 1234, CABA", "Contrato para obra en construcción", 10},
		{eventosXYZ, hace2Meses, en5Dias, 1600, "Calle San Martín 567, San Isidro", "Evento corporativo", 8},
		{municipalidadSanMartin, hace1Mes, en3Meses, 1500, "Belgrano 3200, San Martín", "Evento municipal", 12},
		{construccionDEF, hace3Meses, hace1Mes, 1550, "Corrientes 2500, CABA", "Obra finalizada", 5},
		{productoraMNO, hace2Meses, en10Dias, 1650, "Libertador 5400, Vicente López", "Festival de música", 6},
		{edificiosSA, hace1Mes, en2Meses, 1400, "Av. Cabildo 2500, CABA", "Edificio residencial", 3},
		{corporativosSRL, hace3Meses, en1Mes, 1700, "Av. del Libertador 3300, Vicente López", "Congreso internacional", 4},
		{municipalidadTigre, hace2Meses, en3Meses, 1550, "Av. Cazón 1500, Tigre", "Evento cultural", 2},
	}
	siguiente := 1
	for i, p := range planes {
		c := entity.Contrato{
			ID:               contratoID(i + 1),
			ClienteID:        p.cliente,
			FechaInicio:      p.inicio,
			FechaFin:         p.fin,
			ValorDiario:      pesos(p.valor),
			DireccionEntrega: p.direccion,
			Observaciones:    p.notas,
		}
		ds.contratos = append(ds.contratos, c)
		ids := make([]string, 0, p.banos)
		for n := 0; n < p.banos; n++ {
			ids = append(ids, banoID(siguiente))
			siguiente++
		}
		ds.asignaciones = append(ds.asignaciones, asignar(c, ids...)...)
	}

	factura := func(n int, cliente int64, contrato int, fecha time.Time, monto int64, estado string) entity.Factura {
		return entity.Factura{ID: facturaID(n), ClienteID: cliente, ContratoID: contratoID(contrato), Fecha: fecha, Monto: pesos(monto), Estado: estado}
	}
	ds.facturas = []entity.Factura{
		factura(1, constructoraABC, 1, hace2Meses, 45000, entity.FacturaPagada),
		factura(2, constructoraABC, 1, hace1Mes, 45000, entity.FacturaPagada),
		factura(3, constructoraABC, 1, hoy, 45000, entity.FacturaPendiente),
		factura(4, eventosXYZ, 2, hace1Mes, 38400, entity.FacturaPagada),
		factura(5, eventosXYZ, 2, hoy, 38400, entity.FacturaPendiente),
		factura(6, municipalidadSanMartin, 3, hace1Mes, 54000, entity.FacturaPagada),
		factura(7, construccionDEF, 4, hace2Meses, 23250, entity.FacturaPagada),
		factura(8, productoraMNO, 5, hace1Mes, 29700, entity.FacturaPendiente),
		factura(9, edificiosSA, 6, hoy, 12600, entity.FacturaPendiente),
		factura(10, corporativosSRL, 7, hace1Mes, 20400, entity.FacturaPagada),
	}

	remito := func(n int, cliente int64, contrato int, fecha time.Time, tipo string, cantidad int) entity.Remito {
		return entity.Remito{ID: remitoID(n), ClienteID: cliente, ContratoID: contratoID(contrato), Fecha: fecha, Tipo: tipo, Cantidad: cantidad}
	}
	ds.remitos = []entity.Remito{
		remito(1, constructoraABC, 1, hace3Meses, entity.RemitoEntrega, 10),
		remito(2, eventosXYZ, 2, hace2Meses, entity.RemitoEntrega, 8),
		remito(3, municipalidadSanMartin, 3, hace1Mes, entity.RemitoEntrega, 12),
		remito(4, construccionDEF, 4, hace3Meses, entity.RemitoEntrega, 5),
		remito(5, construccionDEF, 4, hace1Mes, entity.RemitoRetiro, 5),
		remito(6, productoraMNO, 5, hace2Meses, entity.RemitoEntrega, 6),
		remito(7, edificiosSA, 6, hace1Mes, entity.RemitoEntrega, 3),
		remito(8, corporativosSRL, 7, hace3Meses, entity.RemitoEntrega, 4),
		remito(9, municipalidadTigre, 8, hace2Meses, entity.RemitoEntrega, 2),
	}

	pago := func(cliente int64, fecha time.Time, monto int64, metodo, comprobante string, factura int, obs string) entity.Pago {
		return entity.Pago{ClienteID: cliente, Fecha: fecha, Monto: pesos(monto), MetodoPago: metodo,
			Comprobante: fmt.Sprintf(comprobante, anio), FacturaID: facturaID(factura), Observaciones: obs}
	}
	ds.pagos = []entity.Pago{
		pago(constructoraABC, hace2Meses, 45000, entity.MetodoTransferencia, "TR-%d-001", 1, "Pago primera factura"),
		pago(constructoraABC, hace1Mes, 45000, entity.MetodoTransferencia, "TR-%d-002", 2, "Pago segunda factura"),
		pago(eventosXYZ, hace1Mes, 38400, entity.MetodoCheque, "CH-%d-001", 4, "Pago primera factura"),
		pago(municipalidadSanMartin, hace1Mes, 54000, entity.MetodoTransferencia, "TR-%d-003", 6, "Pago primera factura"),
		pago(construccionDEF, hace2Meses, 23250, entity.MetodoEfectivo, "EF-%d-001", 7, "Pago única factura"),
		pago(corporativosSRL, hace1Mes, 20400, entity.MetodoTransferencia, "TR-%d-004", 10, "Pago primera factura"),
	}

	alertaPago := func(cliente int64, factura int, estado string, monto int64, prioridad string) entity.Alerta {
		return entity.Alerta{Tipo: entity.AlertaPago, ClienteID: cliente, FacturaID: facturaID(factura),
			Mensaje: fmt.Sprintf("Factura %s %s por %s", facturaID(factura), estado, moneda.Formato(pesos(monto))),
			Fecha:   hoy, Prioridad: prioridad}
	}
	alertaContrato := func(cliente int64, contrato, dias int, prioridad string) entity.Alerta {
		return entity.Alerta{Tipo: entity.AlertaContrato, ClienteID: cliente, ContratoID: contratoID(contrato),
			Mensaje: fmt.Sprintf("Contrato vence en %d días", dias), Fecha: hoy, Prioridad: prioridad}
	}
	ds.alertas = []entity.Alerta{
		alertaPago(constructoraABC, 3, "pendiente de pago", 45000, entity.PrioridadAlta),
		alertaContrato(eventosXYZ, 2, 5, entity.PrioridadMedia),
		alertaPago(eventosXYZ, 5, "pendiente de pago", 38400, entity.PrioridadMedia),
		alertaPago(productoraMNO, 8, "vencida", 29700, entity.PrioridadAlta),
		alertaContrato(productoraMNO, 5, 10, entity.PrioridadBaja),
		alertaPago(edificiosSA, 9, "pendiente de pago", 12600, entity.PrioridadMedia),
	}
	return ds
}
