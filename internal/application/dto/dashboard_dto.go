package dto

// DashboardStatsDTO los cuatro contadores del encabezado del dashboard.
type DashboardStatsDTO struct {
	TotalProductos int64 `json:"totalProductos"`
	StockBajo      int64 `json:"stockBajo"`
	EntradasMes    int64 `json:"entradasMes"`
	SalidasMes     int64 `json:"salidasMes"`
}

// AlertDTO producto en o bajo su stock mínimo (widget de alertas).
type AlertDTO struct {
	ProductoID  string `json:"producto_id"`
	Nombre      string `json:"nombre"`
	Marca       string `json:"marca,omitempty"`
	StockActual int64  `json:"stock_actual"`
	StockMinimo int64  `json:"stock_minimo"`
	Estado      string `json:"estado"`
}

// DashboardDataDTO respuesta de GET /api/bodega.
type DashboardDataDTO struct {
	Estadisticas DashboardStatsDTO `json:"estadisticas"`
	Alertas      []AlertDTO        `json:"alertas"`
	Productos    []ProductDTO      `json:"productos"`
}
