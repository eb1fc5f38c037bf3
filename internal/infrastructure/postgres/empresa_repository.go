package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador de persistência de empresas.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste um cadastro em status pending.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, company_name, cnpj, location, resp_name, resp_phone, preferred_meeting_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.CompanyName, e.CNPJ, e.Location, e.RespName, e.RespPhone, e.PreferredMeetingAt,
		e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém um cadastro por ID. Devolve nil sem erro quando não existe.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `
		SELECT id, company_name, cnpj, location, resp_name, resp_phone, preferred_meeting_at, status,
		       COALESCE(credentials_email, ''), COALESCE(credentials_hash, ''), created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyName, &e.CNPJ, &e.Location, &e.RespName, &e.RespPhone, &e.PreferredMeetingAt,
		&e.Status, &e.CredentialsEmail, &e.CredentialsHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// FindApprovedByEmail obtém uma empresa aprovada pelo email de credencial.
// Devolve nil sem erro quando não existe.
func (r *EmpresaRepo) FindApprovedByEmail(email string) (*entity.Empresa, error) {
	query := `
		SELECT id, company_name, cnpj, location, resp_name, resp_phone, preferred_meeting_at, status,
		       COALESCE(credentials_email, ''), COALESCE(credentials_hash, ''), created_at, updated_at
		FROM empresas WHERE status = $1 AND credentials_email = $2`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, entity.EmpresaStatusApproved, email).Scan(
		&e.ID, &e.CompanyName, &e.CNPJ, &e.Location, &e.RespName, &e.RespPhone, &e.PreferredMeetingAt,
		&e.Status, &e.CredentialsEmail, &e.CredentialsHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find empresa by credentials: %w", err)
	}
	return &e, nil
}

// List devolve todos os cadastros, mais recentes primeiro.
func (r *EmpresaRepo) List() ([]*entity.Empresa, error) {
	query := `
		SELECT id, company_name, cnpj, location, resp_name, resp_phone, preferred_meeting_at, status,
		       COALESCE(credentials_email, ''), COALESCE(credentials_hash, ''), created_at, updated_at
		FROM empresas ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.CNPJ, &e.Location, &e.RespName, &e.RespPhone,
			&e.PreferredMeetingAt, &e.Status, &e.CredentialsEmail, &e.CredentialsHash, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ApplyDecision grava a decisão apenas se o cadastro ainda está pending.
// Devolve false quando outra decisão chegou antes (0 linhas afetadas) e
// domain.ErrDuplicate quando o email de credencial colide com um já emitido.
func (r *EmpresaRepo) ApplyDecision(e *entity.Empresa) (bool, error) {
	query := `
		UPDATE empresas
		SET status = $2, credentials_email = NULLIF($3, ''), credentials_hash = NULLIF($4, ''), updated_at = $5
		WHERE id = $1 AND status = $6`
	cmd, err := r.q.Exec(context.Background(), query,
		e.ID, e.Status, e.CredentialsEmail, e.CredentialsHash, e.UpdatedAt,
		entity.EmpresaStatusPending,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("apply empresa decision: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
