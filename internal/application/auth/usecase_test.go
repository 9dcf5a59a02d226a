package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odisseia/erp-api/internal/application/auth"
	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/pkg/config"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func testJWTCfg() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: 60,
		Issuer:     "erp-odisseia-test",
	}
}

func TestRegister_CriaCorretorPorPadrao(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "Maria@Odisseia.com.br",
		Password: "segredo123",
		Name:     "Maria",
	})
	require.NoError(t, err)

	assert.Equal(t, "maria@odisseia.com.br", out.Email, "email deve ser normalizado para minúsculas")
	assert.Equal(t, entity.RoleCorretor, out.Role, "sem papel explícito, nasce corretor")
	assert.True(t, out.Active)

	stored, err := repo.GetByEmail(context.Background(), "maria@odisseia.com.br")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "segredo123", stored.PasswordHash, "a senha nunca é guardada em claro")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg())

	req := dto.RegisterRequest{Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria"}
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_SenhaCurta(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "123", Name: "Maria",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// O registro é público: ninguém pode nascer admin por ele.
func TestRegister_RecusaPedidoDeAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := repo.GetByEmail(context.Background(), "maria@odisseia.com.br")
	require.NoError(t, err)
	assert.Nil(t, stored, "a tentativa não pode deixar usuário criado")
}

// Pedir "corretor" explicitamente continua aceito.
func TestRegister_PapelCorretorExplicito(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria", Role: entity.RoleCorretor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCorretor, out.Role)
}

func TestRegister_PapelDesconhecido(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria", Role: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Sucesso(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "maria@odisseia.com.br", out.User.Email)
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@odisseia.com.br", Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg())

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@odisseia.com.br", Password: "segredo123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123", Name: "Maria",
	})
	require.NoError(t, err)

	repo.byID[out.ID].Active = false
	repo.byEmail[out.Email].Active = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@odisseia.com.br", Password: "segredo123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
