package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base: productos mutables más ledgers append-only y tokens
// de idempotencia. El fakeTxRunner toma el lock del store durante toda la
// "transacción" (equivalente al row lock del UPDATE) y restaura un snapshot si
// el callback falla, imitando el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]entity.Product
	suppliers map[string]entity.Supplier
	entries   []entity.StockEntry
	exits     []entity.StockExit
	idem      map[string]struct{}
}

func newMemStore(products ...entity.Product) *memStore {
	s := &memStore{
		products:  make(map[string]entity.Product),
		suppliers: make(map[string]entity.Supplier),
		idem:      make(map[string]struct{}),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *memStore) snapshot() memSnapshot {
	products := make(map[string]entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	idem := make(map[string]struct{}, len(s.idem))
	for k := range s.idem {
		idem[k] = struct{}{}
	}
	return memSnapshot{
		products: products,
		entries:  len(s.entries),
		exits:    len(s.exits),
		idem:     idem,
	}
}

type memSnapshot struct {
	products map[string]entity.Product
	entries  int
	exits    int
	idem     map[string]struct{}
}

func (s *memStore) restore(snap memSnapshot) {
	s.products = snap.products
	s.entries = s.entries[:snap.entries]
	s.exits = s.exits[:snap.exits]
	s.idem = snap.idem
}

// fakeProductRepo accede al store; con inTx true asume que el lock ya está tomado.
type fakeProductRepo struct {
	s    *memStore
	inTx bool
}

func (r *fakeProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	r.s.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	defer r.lock()()
	r.s.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.LowStock() {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) IncrementStock(productID string, quantity int64) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[productID]
	if !ok {
		return nil, nil
	}
	p.StockActual += quantity
	r.s.products[productID] = p
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) DecrementStock(productID string, quantity int64) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[productID]
	if !ok || p.StockActual < quantity {
		// mismo contrato que el UPDATE condicionado: cero filas afectadas
		return nil, nil
	}
	p.StockActual -= quantity
	r.s.products[productID] = p
	cp := p
	return &cp, nil
}

type fakeSupplierRepo struct{ s *memStore }

func (r *fakeSupplierRepo) Create(sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := sup
	return &cp, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}

type fakeEntryRepo struct{ s *memStore }

func (r *fakeEntryRepo) Create(e *entity.StockEntry) error {
	r.s.entries = append(r.s.entries, *e)
	return nil
}

func (r *fakeEntryRepo) ListRecent(limit int) ([]*repository.EntryRecord, error) {
	return nil, nil
}

func (r *fakeEntryRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*repository.EntryRecord, error) {
	return nil, nil
}

type fakeExitRepo struct{ s *memStore }

func (r *fakeExitRepo) Create(e *entity.StockExit) error {
	r.s.exits = append(r.s.exits, *e)
	return nil
}

func (r *fakeExitRepo) ListRecent(limit int) ([]*repository.ExitRecord, error) {
	return nil, nil
}

func (r *fakeExitRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*repository.ExitRecord, error) {
	return nil, nil
}

type fakeIdemRepo struct{ s *memStore }

func (r *fakeIdemRepo) CheckAndInsert(key, module string) error {
	composite := key + "|" + module
	if _, ok := r.s.idem[composite]; ok {
		return domain.ErrDuplicate
	}
	r.s.idem[composite] = struct{}{}
	return nil
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
	idemRepo repository.IdempotencyRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	snap := t.s.snapshot()
	err := fn(
		&fakeProductRepo{s: t.s, inTx: true},
		&fakeEntryRepo{s: t.s},
		&fakeExitRepo{s: t.s},
		&fakeIdemRepo{s: t.s},
	)
	if err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func shampoo(stock int64) entity.Product {
	now := time.Now()
	return entity.Product{
		ID:          "11111111-1111-1111-1111-111111111111",
		Name:        "Shampoo Profesional 500ml",
		Brand:       "Keune",
		StockActual: stock,
		StockMinimo: 5,
		SalePrice:   decimal.NewFromInt(45000),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func buildExitUC(store *memStore) *inventory.RegisterExitUseCase {
	return inventory.NewRegisterExitUseCase(
		&fakeTxRunner{s: store},
		&fakeProductRepo{s: store},
	)
}

func buildEntryUC(store *memStore) *inventory.RegisterEntryUseCase {
	return inventory.NewRegisterEntryUseCase(
		&fakeTxRunner{s: store},
		&fakeProductRepo{s: store},
		&fakeSupplierRepo{s: store},
	)
}

func salidaReq(productID string, cantidad int64) dto.RegisterExitRequest {
	return dto.RegisterExitRequest{
		ProductoID:  productID,
		Cantidad:    cantidad,
		TipoSalida:  entity.ExitTypeVenta,
		FechaSalida: "2026-08-15",
	}
}

func entradaReq(productID string, cantidad int64) dto.RegisterEntryRequest {
	return dto.RegisterEntryRequest{
		ProductoID:     productID,
		Cantidad:       cantidad,
		PrecioUnitario: decimal.NewFromInt(30000),
		FechaEntrada:   "2026-08-15",
	}
}

const testUserID = "99999999-9999-9999-9999-999999999999"

// ──────────────────────────────────────────────────────────────────────────────
// RegisterExit
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExit_DescuentaStockYRegistraLedger(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	uc := buildExitUC(store)

	result, err := uc.RegisterExit(context.Background(), testUserID, salidaReq(p.ID, 4))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Salida)

	assert.Equal(t, int64(6), result.Producto.StockActual, "el stock debe quedar en 10-4=6")
	assert.Equal(t, int64(4), result.Salida.Cantidad)
	assert.Equal(t, "venta", result.Salida.TipoSalida)
	assert.Len(t, store.exits, 1, "debe existir exactamente un registro en el ledger de salidas")
	assert.Equal(t, testUserID, store.exits[0].RecordedBy)
}

func TestRegisterExit_StockExacto_QuedaEnCero(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	uc := buildExitUC(store)

	result, err := uc.RegisterExit(context.Background(), testUserID, salidaReq(p.ID, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Producto.StockActual, "cantidad == stock debe aceptarse y dejar stock en 0")
}

func TestRegisterExit_StockInsuficiente_RechazaSinMutar(t *testing.T) {
	p := shampoo(3)
	store := newMemStore(p)
	uc := buildExitUC(store)

	_, err := uc.RegisterExit(context.Background(), testUserID, salidaReq(p.ID, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient, "el error debe exponer la cantidad disponible")
	assert.Equal(t, int64(3), insufficient.Available)

	assert.Equal(t, int64(3), store.products[p.ID].StockActual, "el rechazo no debe tocar el stock")
	assert.Empty(t, store.exits, "el rechazo no debe escribir en el ledger")
}

func TestRegisterExit_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := buildExitUC(store)

	_, err := uc.RegisterExit(context.Background(), testUserID, salidaReq("22222222-2222-2222-2222-222222222222", 1))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRegisterExit_ValidacionRechazaAntesDeMutar(t *testing.T) {
	p := shampoo(10)

	cases := []struct {
		name    string
		mutate  func(*dto.RegisterExitRequest)
		wantErr error
	}{
		{"cantidad cero", func(r *dto.RegisterExitRequest) { r.Cantidad = 0 }, domain.ErrInvalidQuantity},
		{"cantidad negativa", func(r *dto.RegisterExitRequest) { r.Cantidad = -3 }, domain.ErrInvalidQuantity},
		{"fecha vacía", func(r *dto.RegisterExitRequest) { r.FechaSalida = "" }, domain.ErrInvalidDate},
		{"fecha malformada", func(r *dto.RegisterExitRequest) { r.FechaSalida = "15/08/2026" }, domain.ErrInvalidDate},
		{"tipo desconocido", func(r *dto.RegisterExitRequest) { r.TipoSalida = "regalo" }, domain.ErrInvalidExitType},
		{"precio negativo", func(r *dto.RegisterExitRequest) {
			neg := decimal.NewFromInt(-1)
			r.PrecioUnitario = &neg
		}, domain.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(p)
			uc := buildExitUC(store)
			req := salidaReq(p.ID, 2)
			tc.mutate(&req)

			_, err := uc.RegisterExit(context.Background(), testUserID, req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, int64(10), store.products[p.ID].StockActual)
			assert.Empty(t, store.exits)
		})
	}
}

// Dos salidas concurrentes por todo el stock: exactamente una debe ganar.
// La perdedora pasa la validación contra el snapshot pero el decremento
// condicionado dentro de la tx no afecta filas y recibe conflicto.
func TestRegisterExit_ConcurrenciaSoloUnaGana(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	uc := buildExitUC(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RegisterExit(context.Background(), testUserID, salidaReq(p.ID, 10))
		}(i)
	}
	wg.Wait()

	var oks, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case errors.Is(err, domain.ErrConcurrencyConflict) || errors.Is(err, domain.ErrInsufficientStock):
			conflicts++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, conflicts, "la otra debe recibir conflicto")
	assert.Equal(t, int64(0), store.products[p.ID].StockActual, "el stock nunca queda negativo")
	assert.Len(t, store.exits, 1, "solo la ganadora escribe en el ledger")
}

func TestRegisterExit_TokenIdempotencia_RechazaReintento(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	uc := buildExitUC(store)

	req := salidaReq(p.ID, 2)
	req.IdempotencyKey = "tok-001"

	_, err := uc.RegisterExit(context.Background(), testUserID, req)
	require.NoError(t, err)

	_, err = uc.RegisterExit(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el reintento con el mismo token no debe aplicarse dos veces")

	assert.Equal(t, int64(8), store.products[p.ID].StockActual, "el stock solo se descuenta una vez")
	assert.Len(t, store.exits, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterEntry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_SumaStockYRegistraLedger(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	uc := buildEntryUC(store)

	result, err := uc.RegisterEntry(context.Background(), testUserID, entradaReq(p.ID, 50))
	require.NoError(t, err)
	require.NotNil(t, result.Entrada)

	assert.Equal(t, int64(60), result.Producto.StockActual, "el stock debe quedar en 10+50=60")
	assert.Len(t, store.entries, 1)
	assert.Equal(t, int64(50), store.entries[0].Quantity)
}

func TestRegisterEntry_ProveedorInexistente(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	uc := buildEntryUC(store)

	req := entradaReq(p.ID, 5)
	req.ProveedorID = "33333333-3333-3333-3333-333333333333"

	_, err := uc.RegisterEntry(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.products[p.ID].StockActual)
}

func TestRegisterEntry_ValidacionRechaza(t *testing.T) {
	p := shampoo(10)

	cases := []struct {
		name    string
		mutate  func(*dto.RegisterEntryRequest)
		wantErr error
	}{
		{"cantidad cero", func(r *dto.RegisterEntryRequest) { r.Cantidad = 0 }, domain.ErrInvalidQuantity},
		{"fecha malformada", func(r *dto.RegisterEntryRequest) { r.FechaEntrada = "ayer" }, domain.ErrInvalidDate},
		{"caducidad malformada", func(r *dto.RegisterEntryRequest) { r.FechaCaducidad = "2026-13-99" }, domain.ErrInvalidDate},
		{"costo negativo", func(r *dto.RegisterEntryRequest) { r.PrecioUnitario = decimal.NewFromInt(-5) }, domain.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(p)
			uc := buildEntryUC(store)
			req := entradaReq(p.ID, 5)
			tc.mutate(&req)

			_, err := uc.RegisterEntry(context.Background(), testUserID, req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, int64(10), store.products[p.ID].StockActual)
			assert.Empty(t, store.entries)
		})
	}
}

func TestRegisterEntry_TokenIdempotencia_IndependientePorModulo(t *testing.T) {
	p := shampoo(10)
	store := newMemStore(p)
	entryUC := buildEntryUC(store)
	exitUC := buildExitUC(store)

	entryReq := entradaReq(p.ID, 5)
	entryReq.IdempotencyKey = "tok-compartido"
	_, err := entryUC.RegisterEntry(context.Background(), testUserID, entryReq)
	require.NoError(t, err)

	// El mismo token en el módulo de salidas es otro scope: debe aceptarse.
	exitReq := salidaReq(p.ID, 3)
	exitReq.IdempotencyKey = "tok-compartido"
	_, err = exitUC.RegisterExit(context.Background(), testUserID, exitReq)
	require.NoError(t, err)

	// Reintento de la entrada con el mismo token: rechazado.
	_, err = entryUC.RegisterEntry(context.Background(), testUserID, entryReq)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Equal(t, int64(12), store.products[p.ID].StockActual, "10+5-3=12")
}
