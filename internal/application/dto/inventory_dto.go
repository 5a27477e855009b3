package dto

import "github.com/shopspring/decimal"

// RegisterEntryRequest body para POST /api/bodega/entradas.
// Las fechas viajan como YYYY-MM-DD, igual que las envía el formulario.
type RegisterEntryRequest struct {
	ProductoID     string          `json:"producto_id"`
	ProveedorID    string          `json:"proveedor_id,omitempty"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	NumeroLote     string          `json:"numero_lote,omitempty"`
	FechaEntrada   string          `json:"fecha_entrada"`
	FechaCaducidad string          `json:"fecha_caducidad,omitempty"`
	RecibidoPor    string          `json:"recibido_por,omitempty"`
	Observaciones  string          `json:"observaciones,omitempty"`
	// Token opcional de deduplicación: reintentos con el mismo token no duplican la entrada.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// RegisterExitRequest body para POST /api/recepcionista.
type RegisterExitRequest struct {
	ProductoID     string           `json:"producto_id"`
	Cantidad       int64            `json:"cantidad"`
	TipoSalida     string           `json:"tipo_salida"`
	Destino        string           `json:"destino,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Responsable    string           `json:"responsable,omitempty"`
	Observaciones  string           `json:"observaciones,omitempty"`
	FechaSalida    string           `json:"fecha_salida"`
	IdempotencyKey string           `json:"idempotency_key,omitempty"`
}

// ProductDTO producto como lo consumen los formularios y el dashboard.
type ProductDTO struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Marca           string          `json:"marca"`
	Descripcion     string          `json:"descripcion,omitempty"`
	StockActual     int64           `json:"stock_actual"`
	StockMinimo     int64           `json:"stock_minimo"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	UbicacionBodega string          `json:"ubicacion_bodega,omitempty"`
	Estado          string          `json:"estado"` // agotado | bajo | normal
}

// SupplierDTO proveedor para el select del formulario de entradas.
type SupplierDTO struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto,omitempty"`
}

// UserDTO usuario para el select de responsable en salidas.
type UserDTO struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Rol    string `json:"rol,omitempty"`
}

// EntryDTO entrada del historial reciente.
type EntryDTO struct {
	ID              string          `json:"id"`
	ProductoID      string          `json:"producto_id"`
	ProductoNombre  string          `json:"producto_nombre"`
	ProductoMarca   string          `json:"producto_marca,omitempty"`
	ProveedorNombre string          `json:"proveedor_nombre,omitempty"`
	Cantidad        int64           `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	NumeroLote      string          `json:"numero_lote,omitempty"`
	FechaEntrada    string          `json:"fecha_entrada"`
	FechaCaducidad  string          `json:"fecha_caducidad,omitempty"`
	RecibidoPor     string          `json:"recibido_por,omitempty"`
	Observaciones   string          `json:"observaciones,omitempty"`
}

// ExitDTO salida del historial reciente.
type ExitDTO struct {
	ID             string           `json:"id"`
	ProductoID     string           `json:"producto_id"`
	ProductoNombre string           `json:"producto_nombre"`
	ProductoMarca  string           `json:"producto_marca,omitempty"`
	TipoSalida     string           `json:"tipo_salida"`
	Cantidad       int64            `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Destino        string           `json:"destino,omitempty"`
	Responsable    string           `json:"responsable,omitempty"`
	Observaciones  string           `json:"observaciones,omitempty"`
	FechaSalida    string           `json:"fecha_salida"`
}

// EntriesPageData respuesta de GET /api/bodega/entradas: datos de referencia
// para el formulario más el historial reciente.
type EntriesPageData struct {
	Productos   []ProductDTO  `json:"productos"`
	Proveedores []SupplierDTO `json:"proveedores"`
	Entradas    []EntryDTO    `json:"entradas"`
}

// ExitsPageData respuesta de GET /api/recepcionista.
type ExitsPageData struct {
	Productos []ProductDTO `json:"productos"`
	Usuarios  []UserDTO    `json:"usuarios"`
	Salidas   []ExitDTO    `json:"salidas"`
}

// ProductMovementsData historial de movimientos de un producto.
type ProductMovementsData struct {
	Producto ProductDTO `json:"producto"`
	Entradas []EntryDTO `json:"entradas"`
	Salidas  []ExitDTO  `json:"salidas"`
}

// MovementResultDTO resultado de una entrada o salida aceptada: producto
// actualizado más el registro de ledger creado.
type MovementResultDTO struct {
	Producto ProductDTO `json:"producto"`
	Entrada  *EntryDTO  `json:"entrada,omitempty"`
	Salida   *ExitDTO   `json:"salida,omitempty"`
}
