package repository

import "github.com/ecofood/ecofood-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência para cadastros de parceiro.
type EmpresaRepository interface {
	Create(e *entity.Empresa) error
	// GetByID devolve nil quando o id não existe.
	GetByID(id string) (*entity.Empresa, error)
	// FindApprovedByEmail busca uma empresa aprovada pelo email de credencial
	// (comparação exata). Cadastros pending/rejected nunca são devolvidos.
	FindApprovedByEmail(email string) (*entity.Empresa, error)
	// List devolve todos os cadastros, mais recentes primeiro.
	List() ([]*entity.Empresa, error)
	// ApplyDecision grava status e credenciais de e somente se o registro
	// ainda está pending (UPDATE condicional). Devolve false quando outra
	// decisão venceu a corrida; domain.ErrDuplicate quando o email de
	// credencial gerado colidiu com um já emitido.
	ApplyDecision(e *entity.Empresa) (bool, error)
}
