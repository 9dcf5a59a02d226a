package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementa ContractRepository sobre PostgreSQL (usável com pool ou tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository constrói o adaptador de contratos. Passar pool ou tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, numero_contrato, cliente_nome, cliente_cpf, valor, data_inicio, data_fim, status, COALESCE(observacoes, ''), data_criacao, data_atualizacao`

// Create persiste um novo contrato. Número duplicado retorna domain.ErrDuplicate.
func (r *ContractRepo) Create(ctx context.Context, contract *entity.Contract) error {
	query := `
		INSERT INTO contratos (id, numero_contrato, cliente_nome, cliente_cpf, valor, data_inicio, data_fim, status, observacoes, data_criacao, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		contract.ID, contract.Number, contract.ClientName, contract.ClientCPF,
		contract.Value, contract.StartDate, contract.EndDate, contract.Status,
		nullIfEmpty(contract.Notes), contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtém um contrato por ID. Devolve nil, nil se não existir.
func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contratos WHERE id = $1`
	c, err := scanContract(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// Update atualiza um contrato existente.
func (r *ContractRepo) Update(ctx context.Context, contract *entity.Contract) error {
	query := `
		UPDATE contratos SET
			numero_contrato = $2, cliente_nome = $3, cliente_cpf = $4, valor = $5,
			data_inicio = $6, data_fim = $7, status = $8, observacoes = $9,
			data_atualizacao = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		contract.ID, contract.Number, contract.ClientName, contract.ClientCPF,
		contract.Value, contract.StartDate, contract.EndDate, contract.Status,
		nullIfEmpty(contract.Notes), contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um contrato por ID.
func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM contratos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista os contratos, mais recentes primeiro.
func (r *ContractRepo) List(ctx context.Context) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contratos ORDER BY data_criacao DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountActive conta os contratos ativos.
func (r *ContractRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM contratos WHERE status = $1`, entity.ContractStatusActive).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active contracts: %w", err)
	}
	return count, nil
}

func scanContract(row rowScanner) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(&c.ID, &c.Number, &c.ClientName, &c.ClientCPF, &c.Value,
		&c.StartDate, &c.EndDate, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
