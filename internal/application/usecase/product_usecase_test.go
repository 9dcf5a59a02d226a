package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/application/usecase"
	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(ctx context.Context, id string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Active = false
	return nil
}

func createRequest(sku string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:   sku,
		Name:  "Produto " + sku,
		Price: decimal.RequireFromString("25.00"),
		Cost:  decimal.RequireFromString("12.00"),
		Stock: 50,
	}
}

func TestCreateProduct_Sucesso(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.CreateProduct(context.Background(), createRequest("SKU-1"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "SKU-1", out.SKU)
	assert.Equal(t, int64(50), out.Stock)
	assert.True(t, out.Active, "produto novo nasce ativo")
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.CreateProduct(context.Background(), createRequest("SKU-1"))
	require.NoError(t, err)

	_, err = uc.CreateProduct(context.Background(), createRequest("SKU-1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_EstoqueNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	req := createRequest("SKU-1")
	req.Stock = -1
	_, err := uc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetProduct_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetProduct(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProduct_ParcialNaoTocaEstoque(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), createRequest("SKU-1"))
	require.NoError(t, err)

	newName := "Produto renomeado"
	out, err := uc.UpdateProduct(context.Background(), created.ID, dto.UpdateProductRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Produto renomeado", out.Name)
	assert.Equal(t, "SKU-1", out.SKU, "campos ausentes não mudam")
	assert.Equal(t, int64(50), out.Stock, "update de catálogo nunca altera estoque")
}

func TestUpdateProduct_SKUParaJaExistente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.CreateProduct(context.Background(), createRequest("SKU-1"))
	require.NoError(t, err)
	created, err := uc.CreateProduct(context.Background(), createRequest("SKU-2"))
	require.NoError(t, err)

	taken := "SKU-1"
	_, err = uc.UpdateProduct(context.Background(), created.ID, dto.UpdateProductRequest{SKU: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeactivateProduct_SomeDasListagens(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), createRequest("SKU-1"))
	require.NoError(t, err)

	require.NoError(t, uc.DeactivateProduct(context.Background(), created.ID))

	list, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	// Mas continua acessível por ID para o histórico.
	got, err := uc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
