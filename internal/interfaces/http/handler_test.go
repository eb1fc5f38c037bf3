package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/application/onboarding"
	"github.com/ecofood/ecofood-api/internal/application/orders"
	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
	apphttp "github.com/ecofood/ecofood-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória com a mesma semântica dos adaptadores PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type fakeMenuRepo struct {
	byID map[string]*entity.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{byID: make(map[string]*entity.MenuItem)}
}

func (f *fakeMenuRepo) Create(item *entity.MenuItem) error {
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	item, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeMenuRepo) List() ([]*entity.MenuItem, error) {
	var list []*entity.MenuItem
	for _, item := range f.byID {
		cp := *item
		list = append(list, &cp)
	}
	return list, nil
}

type fakeOrderRepo struct {
	inserted []*entity.Order // ordem de inserção
}

func (f *fakeOrderRepo) Create(order *entity.Order) error {
	cp := *order
	cp.Items = nil
	f.inserted = append(f.inserted, &cp)
	return nil
}

func (f *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	for _, o := range f.inserted {
		if o.ID == item.OrderID {
			o.Items = append(o.Items, *item)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range f.inserted {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) List() ([]*entity.Order, error) {
	list := make([]*entity.Order, 0, len(f.inserted))
	for i := len(f.inserted) - 1; i >= 0; i-- {
		cp := *f.inserted[i]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	for _, o := range f.inserted {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeOrderTx struct {
	repo *fakeOrderRepo
}

func (f *fakeOrderTx) Run(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(f.repo)
}

// fakeReceiptGenerator devolve bytes fixos; o conteúdo real é coberto pelos
// testes do gerador maroto.
type fakeReceiptGenerator struct{}

func (fakeReceiptGenerator) GenerateOrderReceipt(_ context.Context, _ *entity.Order) ([]byte, error) {
	return []byte("%PDF-1.7 comprovante"), nil
}

type fakeEmpresaStore struct {
	byID     map[string]*entity.Empresa
	listErr  error
	inserted []string // ordem de inserção, para listagem estável
}

func newFakeEmpresaStore() *fakeEmpresaStore {
	return &fakeEmpresaStore{byID: make(map[string]*entity.Empresa)}
}

func (f *fakeEmpresaStore) Create(e *entity.Empresa) error {
	cp := *e
	f.byID[e.ID] = &cp
	f.inserted = append(f.inserted, e.ID)
	return nil
}

func (f *fakeEmpresaStore) GetByID(id string) (*entity.Empresa, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmpresaStore) FindApprovedByEmail(email string) (*entity.Empresa, error) {
	for _, e := range f.byID {
		if e.Status == entity.EmpresaStatusApproved && e.CredentialsEmail == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmpresaStore) List() ([]*entity.Empresa, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	list := make([]*entity.Empresa, 0, len(f.inserted))
	for _, id := range f.inserted {
		cp := *f.byID[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeEmpresaStore) ApplyDecision(e *entity.Empresa) (bool, error) {
	stored, ok := f.byID[e.ID]
	if !ok || stored.Status != entity.EmpresaStatusPending {
		return false, nil
	}
	if e.CredentialsEmail != "" {
		for id, other := range f.byID {
			if id != e.ID && other.CredentialsEmail == e.CredentialsEmail {
				return false, domain.ErrDuplicate
			}
		}
	}
	cp := *e
	f.byID[e.ID] = &cp
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildOrderApp(t *testing.T) (*fiber.App, *fakeMenuRepo, *fakeOrderRepo) {
	t.Helper()
	menu := newFakeMenuRepo()
	orderRepo := &fakeOrderRepo{}
	uc := orders.NewOrderUseCase(menu, orderRepo, &fakeOrderTx{repo: orderRepo})
	receipt := orders.NewReceiptUseCase(orderRepo, fakeReceiptGenerator{})
	h := apphttp.NewOrderHandler(uc, receipt)

	app := fiber.New()
	app.Post("/api/orders", h.Create)
	app.Get("/api/orders", h.List)
	app.Put("/api/orders/status", h.UpdateStatus)
	app.Get("/api/orders/:id/comprovante", h.Receipt)
	return app, menu, orderRepo
}

func buildEmpresaApp(t *testing.T) (*fiber.App, *fakeEmpresaStore) {
	t.Helper()
	store := newFakeEmpresaStore()
	uc := onboarding.NewOnboardingUseCase(store, onboarding.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	h := apphttp.NewEmpresaHandler(uc)

	app := fiber.New()
	app.Post("/api/empresas", h.Submit)
	app.Get("/api/empresas", h.List)
	app.Patch("/api/empresas", h.Decide)
	app.Post("/api/empresas/login", h.Login)
	return app, store
}

// doJSON dispara uma requisição com corpo JSON e devolve a resposta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeErrorBody(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedMenuItem(t *testing.T, menu *fakeMenuRepo, name, price string) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		ID:        "item-" + name,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Validade:  time.Now().Add(48 * time.Hour),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, menu.Create(item))
	return item
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos: mapeamento de erros do caso de uso para status HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderHandler_CriarPedido_Retorna201(t *testing.T) {
	app, menu, _ := buildOrderApp(t)
	item := seedMenuItem(t, menu, "Marmita Fit", "18.90")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Endereco: "Rua das Flores, 10",
		Items:    []dto.OrderItemRequest{{MenuItemID: item.ID, Quantity: 2}},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.OrderStatusRecebido, out.Status)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("37.80")),
		"total deve ser a soma dos subtotais, esperado 37.80, veio %s", out.Total)
}

// Uma linha com item inexistente recusa o pedido inteiro: 400 com a mensagem
// nomeando o id e nada persistido.
func TestOrderHandler_ItemInexistente_Retorna400ComID(t *testing.T) {
	app, menu, orderRepo := buildOrderApp(t)
	item := seedMenuItem(t, menu, "Marmita Fit", "18.90")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Endereco: "Rua das Flores, 10",
		Items: []dto.OrderItemRequest{
			{MenuItemID: item.ID, Quantity: 1},
			{MenuItemID: "fantasma", Quantity: 1},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Item do menu não encontrado: fantasma", body.Message)
	assert.Empty(t, orderRepo.inserted, "pedido recusado não deixa rastro")
}

func TestOrderHandler_EntradaInvalida_Retorna400(t *testing.T) {
	app, _, _ := buildOrderApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Endereco: "",
		Items:    []dto.OrderItemRequest{{MenuItemID: "x", Quantity: 1}},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeErrorBody(t, resp).Code)
}

func TestOrderHandler_StatusDesconhecido_Retorna400(t *testing.T) {
	app, menu, _ := buildOrderApp(t)
	item := seedMenuItem(t, menu, "Marmita Fit", "18.90")

	created := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Endereco: "Rua das Flores, 10",
		Items:    []dto.OrderItemRequest{{MenuItemID: item.ID, Quantity: 1}},
	})
	defer created.Body.Close()
	var order dto.OrderResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&order))

	resp := doJSON(t, app, http.MethodPut, "/api/orders/status", dto.UpdateOrderStatusRequest{
		ID: order.ID, Status: "Cancelado",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Status inválido", body.Message)
}

func TestOrderHandler_PedidoInexistente_Retorna404(t *testing.T) {
	app, _, _ := buildOrderApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/orders/status", dto.UpdateOrderStatusRequest{
		ID: "nao-existe", Status: entity.OrderStatusEntregue,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Pedido não encontrado", body.Message)
}

func TestOrderHandler_ComprovanteInexistente_Retorna404(t *testing.T) {
	app, _, _ := buildOrderApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/nao-existe/comprovante", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrderHandler_Comprovante_DevolvePDF(t *testing.T) {
	app, menu, _ := buildOrderApp(t)
	item := seedMenuItem(t, menu, "Marmita Fit", "18.90")

	created := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Endereco: "Rua das Flores, 10",
		Items:    []dto.OrderItemRequest{{MenuItemID: item.ID, Quantity: 1}},
	})
	defer created.Body.Close()
	var order dto.OrderResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&order))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID+"/comprovante", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas: mapeamento de erros do caso de uso para status HTTP
// ──────────────────────────────────────────────────────────────────────────────

func submitEmpresaHTTP(t *testing.T, app *fiber.App) dto.EmpresaResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/empresas", dto.SubmitEmpresaRequest{
		CompanyName: "Padaria Sol",
		RespName:    "Ana",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.EmpresaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestEmpresaHandler_Submit_SemCampos_Retorna400(t *testing.T) {
	app, _ := buildEmpresaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/empresas", dto.SubmitEmpresaRequest{
		CompanyName: "Padaria Sol",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeErrorBody(t, resp).Code)
}

func TestEmpresaHandler_Decide_Aprovacao_Retorna200ComCredenciais(t *testing.T) {
	app, _ := buildEmpresaApp(t)
	submitted := submitEmpresaHTTP(t, app)

	resp := doJSON(t, app, http.MethodPatch, "/api/empresas", dto.DecideEmpresaRequest{
		ID: submitted.ID, Action: onboarding.ActionApprove,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DecideEmpresaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.OK)
	assert.Equal(t, entity.EmpresaStatusApproved, out.Updated.Status)
	require.NotNil(t, out.Credentials)
	assert.NotEmpty(t, out.Credentials.Email)
	assert.NotEmpty(t, out.Credentials.Password)
}

// A segunda decisão sobre o mesmo cadastro perde: 409 e as credenciais da
// primeira permanecem.
func TestEmpresaHandler_Decide_JaDecidido_Retorna409(t *testing.T) {
	app, store := buildEmpresaApp(t)
	submitted := submitEmpresaHTTP(t, app)

	first := doJSON(t, app, http.MethodPatch, "/api/empresas", dto.DecideEmpresaRequest{
		ID: submitted.ID, Action: onboarding.ActionApprove,
	})
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)
	var decided dto.DecideEmpresaResponse
	require.NoError(t, json.NewDecoder(first.Body).Decode(&decided))

	resp := doJSON(t, app, http.MethodPatch, "/api/empresas", dto.DecideEmpresaRequest{
		ID: submitted.ID, Action: onboarding.ActionReject,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Equal(t, "Cadastro já decidido", body.Message)

	stored, err := store.GetByID(submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, decided.Credentials.Email, stored.CredentialsEmail,
		"as credenciais da primeira decisão permanecem intactas")
}

func TestEmpresaHandler_Decide_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildEmpresaApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/empresas", dto.DecideEmpresaRequest{
		ID: "nao-existe", Action: onboarding.ActionApprove,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Empresa não encontrada", body.Message)
}

func TestEmpresaHandler_Decide_AcaoInvalida_Retorna400(t *testing.T) {
	app, _ := buildEmpresaApp(t)
	submitted := submitEmpresaHTTP(t, app)

	resp := doJSON(t, app, http.MethodPatch, "/api/empresas", dto.DecideEmpresaRequest{
		ID: submitted.ID, Action: "aprovar",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeErrorBody(t, resp).Code)
}

func TestEmpresaHandler_Login_CredenciaisInvalidas_Retorna401(t *testing.T) {
	app, _ := buildEmpresaApp(t)
	submitEmpresaHTTP(t, app) // pendente, sem credenciais

	resp := doJSON(t, app, http.MethodPost, "/api/empresas/login", dto.EmpresaLoginRequest{
		Email: "qualquer@ecofood.local", Password: "12345678",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.Equal(t, "Credenciais inválidas", body.Message)
}

// Falha de armazenamento nunca vira coleção vazia: 500 com código STORAGE.
func TestEmpresaHandler_FalhaDeArmazenamento_Retorna500(t *testing.T) {
	app, store := buildEmpresaApp(t)
	store.listErr = assert.AnError

	req := httptest.NewRequest(http.MethodGet, "/api/empresas", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "STORAGE", decodeErrorBody(t, resp).Code)
}
