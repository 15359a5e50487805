package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// nopLogger глушит логи в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})        {}
func (nopLogger) Infof(string, ...interface{})         {}
func (nopLogger) Warnf(string, ...interface{})         {}
func (nopLogger) Errorf(error, string, ...interface{}) {}

// mockTx реализует pgx.Tx ровно настолько, насколько его трогают usecase-ы:
// репозитории в тестах подменяются целиком и до запросов дело не доходит.
type mockTx struct {
	committed  bool
	rolledBack bool
}

func (t *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *mockTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}
func (t *mockTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}
func (t *mockTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *mockTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *mockTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *mockTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *mockTx) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *mockTx) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}
func (t *mockTx) QueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }
func (t *mockTx) Conn() *pgx.Conn                                          { return nil }

// mockDB реализует transaction.Transactional.
type mockDB struct {
	beginErr error
}

func (db *mockDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return &mockTx{}, nil
}

// mockCartRepo — потокобезопасная корзина в памяти.
type mockCartRepo struct {
	mu     sync.Mutex
	nextID int64
	carts  map[int64]*mockCart // по userID

	deleteLineCalls int
	clearLinesCalls int
}

type mockCart struct {
	id        int64
	lines     map[int64]int64
	updatedAt time.Time
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: map[int64]*mockCart{}}
}

func (m *mockCartRepo) snapshot(userID int64) *domain.Cart {
	cart, ok := m.carts[userID]
	if !ok {
		return nil
	}

	result := &domain.Cart{ID: cart.id, UserID: userID, UpdatedAt: cart.updatedAt}
	ids := make([]int64, 0, len(cart.lines))
	for id := range cart.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		result.Lines = append(result.Lines, domain.CartLine{ProductID: id, Quantity: cart.lines[id]})
	}
	return result
}

func (m *mockCartRepo) GetCart(_ context.Context, userID int64) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := m.snapshot(userID)
	if cart == nil {
		return nil, e.ErrCartNotFound
	}
	return cart, nil
}

func (m *mockCartRepo) GetCartForUpdate(ctx context.Context, userID int64) (*domain.Cart, error) {
	return m.GetCart(ctx, userID)
}

func (m *mockCartRepo) CreateCart(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[userID]; !ok {
		m.nextID++
		m.carts[userID] = &mockCart{id: m.nextID, lines: map[int64]int64{}, updatedAt: time.Now()}
	}
	return nil
}

func (m *mockCartRepo) EnsureCart(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		m.nextID++
		cart = &mockCart{id: m.nextID, lines: map[int64]int64{}}
		m.carts[userID] = cart
	}
	cart.updatedAt = time.Now()
	return cart.id, nil
}

func (m *mockCartRepo) byID(cartID int64) *mockCart {
	for _, cart := range m.carts {
		if cart.id == cartID {
			return cart
		}
	}
	return nil
}

func (m *mockCartRepo) IncrementLine(_ context.Context, cartID, productID, quantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := m.byID(cartID)
	if cart == nil {
		return fmt.Errorf("cart %d not found", cartID)
	}
	cart.lines[productID] += quantity
	return nil
}

func (m *mockCartRepo) SetLine(_ context.Context, cartID, productID, quantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := m.byID(cartID)
	if cart == nil {
		return fmt.Errorf("cart %d not found", cartID)
	}
	cart.lines[productID] = quantity
	return nil
}

func (m *mockCartRepo) DeleteLine(_ context.Context, userID, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteLineCalls++
	if cart, ok := m.carts[userID]; ok {
		delete(cart.lines, productID)
	}
	return nil
}

func (m *mockCartRepo) ClearLines(_ context.Context, cartID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLinesCalls++
	if cart := m.byID(cartID); cart != nil {
		cart.lines = map[int64]int64{}
	}
	return nil
}

// mockCatalog — каталог в памяти, реализует CatalogUC.
type mockCatalog struct {
	mu       sync.RWMutex
	products map[int64]ProductInfo
}

func newMockCatalog(products ...ProductInfo) *mockCatalog {
	m := &mockCatalog{products: map[int64]ProductInfo{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockCatalog) ListProducts(context.Context) ([]ProductInfo, error) {
	return nil, nil
}

func (m *mockCatalog) GetProduct(_ context.Context, id int64) (*ProductInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.products[id]
	if !ok || info.IsArchived {
		return nil, e.ErrProductUnavailable
	}
	return &info, nil
}

func (m *mockCatalog) GetProductsInfo(_ context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := &GetProductsRes{}
	for _, id := range req.IDs {
		if info, ok := m.products[id]; ok {
			res.Products = append(res.Products, info)
		} else {
			res.NotFoundProducts = append(res.NotFoundProducts, id)
		}
	}
	return res, nil
}

func (m *mockCatalog) UpsertProduct(context.Context, *UpsertProductReq) (*domain.Product, error) {
	return nil, nil
}

func (m *mockCatalog) ArchiveProduct(context.Context, int64) error { return nil }

func (m *mockCatalog) ListAllProducts(context.Context) ([]ProductInfo, error) { return nil, nil }

func (m *mockCatalog) Statistics(context.Context) (*StatisticsRes, error) { return nil, nil }

// mockProductRepo реализует ProductRepository для проверок на оформлении заказа.
type mockProductRepo struct {
	products map[int64]domain.Product
}

func newMockProductRepo(products ...domain.Product) *mockProductRepo {
	m := &mockProductRepo{products: map[int64]domain.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Upsert(context.Context, *domain.Product) (*UpsertProductRes, error) {
	return nil, nil
}

func (m *mockProductRepo) GetProductsInfo(context.Context, []int64) ([]ProductInfo, error) {
	return nil, nil
}

func (m *mockProductRepo) GetProductsForCheckout(_ context.Context, ids []int64) ([]domain.Product, error) {
	var result []domain.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProductRepo) ListActive(context.Context) ([]ProductInfo, error) { return nil, nil }
func (m *mockProductRepo) ListAll(context.Context) ([]ProductInfo, error)    { return nil, nil }
func (m *mockProductRepo) Archive(context.Context, int64) error              { return nil }
func (m *mockProductRepo) Count(context.Context) (int64, error)              { return 0, nil }

// mockOrderRepo хранит заказы в памяти.
type mockOrderRepo struct {
	mu           sync.Mutex
	orders       map[string]*domain.Order
	beforeUpdate func() // вызывается перед условным обновлением статуса
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: map[string]*domain.Order{}}
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *order
	clone.Lines = append([]domain.OrderLine(nil), order.Lines...)
	m.orders[order.ID] = &clone
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	clone := *order
	clone.Lines = append([]domain.OrderLine(nil), order.Lines...)
	return &clone, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (m *mockOrderRepo) ListAll(context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Order
	for _, order := range m.orders {
		result = append(result, *order)
	}
	return result, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, orderID string, from, to domain.OrderStatus, trackingRef string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.beforeUpdate != nil {
		m.beforeUpdate()
	}
	order, ok := m.orders[orderID]
	if !ok || order.Status != from {
		return 0, nil
	}
	order.Status = to
	if trackingRef != "" {
		order.TrackingRef = trackingRef
	}
	return 1, nil
}

func (m *mockOrderRepo) Count(context.Context) (int64, error)   { return 0, nil }
func (m *mockOrderRepo) Revenue(context.Context) (int64, error) { return 0, nil }

// mockOutboxRepo собирает созданные события.
type mockOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (m *mockOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(context.Context, int64) error { return nil }

// mockUserRepo — пользователи в памяти.
type mockUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: map[string]*domain.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[user.Email]; ok {
		return nil, e.ErrEmailTaken
	}
	m.nextID++
	created := &domain.User{
		ID:           m.nextID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	m.byEmail[user.Email] = created
	return created, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.byEmail[email]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, e.ErrUserNotFound
}

func (m *mockUserRepo) List(context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*domain.User, 0, len(m.byEmail))
	for _, user := range m.byEmail {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (m *mockUserRepo) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byEmail)), nil
}

// mockTokenManager выпускает прозрачные токены вида "token:<id>:<admin>".
type mockTokenManager struct {
	issueErr error
	claims   map[string]*TokenClaims
}

func newMockTokenManager() *mockTokenManager {
	return &mockTokenManager{claims: map[string]*TokenClaims{}}
}

func (m *mockTokenManager) Issue(userID int64, isAdmin bool) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	token := fmt.Sprintf("token:%d:%t", userID, isAdmin)
	m.claims[token] = &TokenClaims{UserID: userID, IsAdmin: isAdmin}
	return token, nil
}

func (m *mockTokenManager) Parse(token string) (*TokenClaims, error) {
	claims, ok := m.claims[token]
	if !ok {
		return nil, e.ErrUnauthenticated
	}
	return claims, nil
}
