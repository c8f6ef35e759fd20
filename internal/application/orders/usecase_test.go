package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/orders"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products map[string]*entity.Product
	orders   map[string]*entity.Order
	items    []*entity.OrderItem

	failOnAddItem bool // fuerza un fallo a mitad de transacción
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByName(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error { return nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) DecrementStock(id string, qty int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock -= qty
	return nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.s.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) AddItem(it *entity.OrderItem) error {
	if r.s.failOnAddItem {
		return errors.New("fallo simulado de inserción")
	}
	r.s.items = append(r.s.items, it)
	return nil
}
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}
func (r *fakeOrderRepo) GetStatus(id string) (string, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return o.Status, nil
}
func (r *fakeOrderRepo) ListByUser(string) ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) ListAll() ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
func (r *fakeOrderRepo) Delete(id string) error {
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

// fakeTxRunner reproduce la semántica de rollback: toma un snapshot del estado
// antes de ejecutar fn y lo restaura si fn devuelve error.
type fakeTxRunner struct{ s *fakeStore }

func (tr *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	snapshot := tr.snapshot()
	err := fn(&fakeProductRepo{s: tr.s}, &fakeOrderRepo{s: tr.s})
	if err != nil {
		tr.restore(snapshot)
		return err
	}
	return nil
}

func (tr *fakeTxRunner) snapshot() *fakeStore {
	cp := &fakeStore{
		products: make(map[string]*entity.Product, len(tr.s.products)),
		orders:   make(map[string]*entity.Order, len(tr.s.orders)),
		items:    append([]*entity.OrderItem(nil), tr.s.items...),
	}
	for id, p := range tr.s.products {
		pc := *p
		cp.products[id] = &pc
	}
	for id, o := range tr.s.orders {
		oc := *o
		cp.orders[id] = &oc
	}
	return cp
}

func (tr *fakeTxRunner) restore(snap *fakeStore) {
	tr.s.products = snap.products
	tr.s.orders = snap.orders
	tr.s.items = snap.items
}

func newStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{
		products: make(map[string]*entity.Product),
		orders:   make(map[string]*entity.Order),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func newUseCase(s *fakeStore) *orders.OrderUseCase {
	return orders.NewOrderUseCase(&fakeTxRunner{s: s}, &fakeOrderRepo{s: s}, nil)
}

func producto(id string, precio string, stock int64) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  "Producto " + id,
		Price: decimal.RequireFromString(precio),
		Stock: stock,
	}
}

func pedidoInvitado(lines ...dto.OrderLineRequest) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Productos:        lines,
		DireccionEnvio:   "Calle Falsa 123",
		TelefonoContacto: "3001234567",
		NombreInvitado:   "Ana",
		ApellidoInvitado: "Pérez",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario clásico: stock 5, pedido de 5 unidades agota el stock;
// el siguiente pedido de 1 unidad debe fallar por stock insuficiente.
func TestCreate_StockExactoLuegoAgotado(t *testing.T) {
	s := newStore(producto("p1", "10.00", 5))
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 5},
	))
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("50.00")),
		"total = 5 x 10.00, fue %s", out.Total)
	assert.EqualValues(t, 0, s.products["p1"].Stock, "el stock debe quedar en cero")

	_, err = uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 1},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"con stock agotado el siguiente pedido debe rechazarse")
	assert.EqualValues(t, 0, s.products["p1"].Stock, "el stock no puede quedar negativo")
}

// Dos líneas con el mismo producto: la segunda debe ver el stock ya consumido
// por la primera dentro de la misma transacción.
func TestCreate_LineasDuplicadasCompartenStock(t *testing.T) {
	s := newStore(producto("p1", "10.00", 3))
	uc := newUseCase(s)

	_, err := uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 2},
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 2},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"2+2 sobre stock 3 debe fallar aunque cada línea quepa por separado")
	assert.EqualValues(t, 3, s.products["p1"].Stock,
		"el rollback debe restaurar el stock decrementado por la primera línea")
}

// Un fallo a mitad de transacción no puede dejar estado parcial:
// ni pedido, ni detalles, ni stock decrementado.
func TestCreate_FalloIntermedioRevierteTodo(t *testing.T) {
	s := newStore(producto("p1", "10.00", 5))
	s.failOnAddItem = true
	uc := newUseCase(s)

	_, err := uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 2},
	))
	require.Error(t, err)
	assert.EqualValues(t, 5, s.products["p1"].Stock, "el stock debe quedar intacto")
	assert.Empty(t, s.orders, "no debe persistir ningún pedido")
	assert.Empty(t, s.items, "no debe persistir ningún detalle")
}

// El total es la suma de precio x cantidad con los precios al momento de la compra.
func TestCreate_TotalYSnapshotDePrecios(t *testing.T) {
	s := newStore(
		producto("p1", "19.99", 10),
		producto("p2", "5.50", 10),
	)
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 2},
		dto.OrderLineRequest{ProductoID: "p2", Cantidad: 3},
	))
	require.NoError(t, err)

	// 2*19.99 + 3*5.50 = 39.98 + 16.50 = 56.48
	assert.True(t, out.Total.Equal(decimal.RequireFromString("56.48")),
		"total esperado 56.48, fue %s", out.Total)

	require.Len(t, s.items, 2)
	assert.True(t, s.items[0].UnitPrice.Equal(decimal.RequireFromString("19.99")),
		"el detalle captura el precio unitario vigente")
	assert.True(t, s.items[1].Subtotal.Equal(decimal.RequireFromString("16.50")))

	order := s.orders[out.ID]
	require.NotNil(t, order)
	assert.Equal(t, entity.StatusPendiente, order.Status, "todo pedido nace pendiente")
}

func TestCreate_ProductoInexistente(t *testing.T) {
	s := newStore(producto("p1", "10.00", 5))
	uc := newUseCase(s)

	_, err := uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "no-existe", Cantidad: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidacionDeEntrada(t *testing.T) {
	s := newStore(producto("p1", "10.00", 5))
	uc := newUseCase(s)
	ctx := context.Background()

	// Sin líneas
	_, err := uc.Create(ctx, nil, dto.CreateOrderRequest{
		DireccionEnvio: "x", TelefonoContacto: "y",
		NombreInvitado: "a", ApellidoInvitado: "b",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pedido sin líneas")

	// Cantidad cero
	_, err = uc.Create(ctx, nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 0},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad debe ser al menos 1")

	// Invitado sin datos de contacto
	in := pedidoInvitado(dto.OrderLineRequest{ProductoID: "p1", Cantidad: 1})
	in.NombreInvitado = "   "
	_, err = uc.Create(ctx, nil, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "invitado requiere nombre no vacío")
}

// Con token, el pedido queda asociado al usuario y los campos de invitado no son obligatorios.
func TestCreate_UsuarioAutenticadoSinCamposInvitado(t *testing.T) {
	s := newStore(producto("p1", "10.00", 5))
	uc := newUseCase(s)

	userID := "u1"
	out, err := uc.Create(context.Background(), &userID, dto.CreateOrderRequest{
		Productos:        []dto.OrderLineRequest{{ProductoID: "p1", Cantidad: 1}},
		DireccionEnvio:   "Calle 1",
		TelefonoContacto: "300",
	})
	require.NoError(t, err)

	order := s.orders[out.ID]
	require.NotNil(t, order)
	require.NotNil(t, order.UserID)
	assert.Equal(t, "u1", *order.UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus(t *testing.T) {
	s := newStore(producto("p1", "10.00", 5))
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 1},
	))
	require.NoError(t, err)

	// Estado desconocido
	assert.ErrorIs(t, uc.UpdateStatus(out.ID, "empacado"), domain.ErrInvalidStatus)

	// Salto no permitido: pendiente -> entregado
	assert.ErrorIs(t, uc.UpdateStatus(out.ID, entity.StatusEntregado), domain.ErrInvalidTransition)

	// Cadena válida completa
	require.NoError(t, uc.UpdateStatus(out.ID, entity.StatusProcesando))
	require.NoError(t, uc.UpdateStatus(out.ID, entity.StatusEnviado))
	require.NoError(t, uc.UpdateStatus(out.ID, entity.StatusEntregado))

	// Terminal: entregado no admite más cambios
	assert.ErrorIs(t, uc.UpdateStatus(out.ID, entity.StatusCancelado), domain.ErrInvalidTransition)

	// Pedido inexistente
	assert.ErrorIs(t, uc.UpdateStatus("no-existe", entity.StatusProcesando), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recibo PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakeReceipts struct{}

func (fakeReceipts) GenerateOrderReceipt(_ context.Context, o *entity.Order) ([]byte, error) {
	return []byte("pdf:" + o.ID), nil
}

func TestReceipt_Permisos(t *testing.T) {
	s := newStore(producto("p1", "10.00", 10))
	uc := orders.NewOrderUseCase(&fakeTxRunner{s: s}, &fakeOrderRepo{s: s}, fakeReceipts{})
	ctx := context.Background()

	owner := "u1"
	out, err := uc.Create(ctx, &owner, dto.CreateOrderRequest{
		Productos:      []dto.OrderLineRequest{{ProductoID: "p1", Cantidad: 1}},
		DireccionEnvio: "Calle 1", TelefonoContacto: "300",
	})
	require.NoError(t, err)

	// El dueño descarga su recibo
	pdf, err := uc.Receipt(ctx, out.ID, "u1", entity.RoleCliente)
	require.NoError(t, err)
	assert.Equal(t, "pdf:"+out.ID, string(pdf))

	// Otro cliente no puede
	_, err = uc.Receipt(ctx, out.ID, "u2", entity.RoleCliente)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Un admin sí puede
	_, err = uc.Receipt(ctx, out.ID, "cualquiera", entity.RoleAdmin)
	assert.NoError(t, err)

	// Pedido inexistente
	_, err = uc.Receipt(ctx, "no-existe", "u1", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Los pedidos de invitado no tienen dueño: solo admin accede al recibo.
func TestReceipt_PedidoInvitadoSoloAdmin(t *testing.T) {
	s := newStore(producto("p1", "10.00", 10))
	uc := orders.NewOrderUseCase(&fakeTxRunner{s: s}, &fakeOrderRepo{s: s}, fakeReceipts{})
	ctx := context.Background()

	out, err := uc.Create(ctx, nil, pedidoInvitado(
		dto.OrderLineRequest{ProductoID: "p1", Cantidad: 1},
	))
	require.NoError(t, err)

	_, err = uc.Receipt(ctx, out.ID, "u1", entity.RoleCliente)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Receipt(ctx, out.ID, "admin-1", entity.RoleAdmin)
	assert.NoError(t, err)
}
