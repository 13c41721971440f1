package repository

// Repositorios agrupa los repos de escritura atados a una misma transacción.
type Repositorios struct {
	Clientes     ClienteRepository
	Banos        BanoRepository
	Contratos    ContratoRepository
	Asignaciones AsignacionRepository
	Facturas     FacturaRepository
	Remitos      RemitoRepository
	Pagos        PagoRepository
	Alertas      AlertaRepository
	Seed         SeedRepository
}
