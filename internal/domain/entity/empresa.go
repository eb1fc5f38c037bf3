package entity

import "time"

// Estados do ciclo de vida de um cadastro de empresa parceira.
// pending -> approved | rejected; ambos os finais são terminais.
const (
	EmpresaStatusPending  = "pending"
	EmpresaStatusApproved = "approved"
	EmpresaStatusRejected = "rejected"
)

// RoleEmpresa identifica tokens emitidos no login de parceiro.
const RoleEmpresa = "empresa"

// Empresa representa o cadastro de um parceiro do marketplace.
// As credenciais só existem após a aprovação: o email de login é gerado e o
// password é entregue em texto uma única vez; aqui fica apenas o hash bcrypt.
type Empresa struct {
	ID                 string
	CompanyName        string
	CNPJ               string // opcional, sem validação de dígito neste escopo
	Location           string
	RespName           string // responsável pelo cadastro
	RespPhone          string
	PreferredMeetingAt string // horário preferido de contato, texto livre do formulário
	Status             string // ver constantes EmpresaStatus*
	CredentialsEmail   string // vazio até a aprovação
	CredentialsHash    string // bcrypt do password gerado; vazio até a aprovação
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Decided informa se o cadastro já saiu de pending (a decisão é única).
func (e *Empresa) Decided() bool {
	return e.Status != EmpresaStatusPending
}
