package dto

import "time"

// SubmitEmpresaRequest entrada para cadastrar uma empresa parceira.
type SubmitEmpresaRequest struct {
	CompanyName        string `json:"companyName" validate:"required,min=1,max=200"`
	CNPJ               string `json:"cnpj"`
	Location           string `json:"location"`
	RespName           string `json:"respName" validate:"required,min=1,max=200"`
	RespPhone          string `json:"respPhone"`
	PreferredMeetingAt string `json:"preferredMeetingAt"`
}

// DecideEmpresaRequest entrada para aprovar ou rejeitar um cadastro.
type DecideEmpresaRequest struct {
	ID     string `json:"id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// EmpresaResponse saída de um cadastro (nunca expõe o hash do password).
type EmpresaResponse struct {
	ID                 string    `json:"id"`
	CompanyName        string    `json:"companyName"`
	CNPJ               string    `json:"cnpj,omitempty"`
	Location           string    `json:"location,omitempty"`
	RespName           string    `json:"respName"`
	RespPhone          string    `json:"respPhone,omitempty"`
	PreferredMeetingAt string    `json:"preferredMeetingAt,omitempty"`
	Status             string    `json:"status"`
	CredentialsEmail   string    `json:"credentialsEmail,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// EmpresaListResponse lista de cadastros para revisão administrativa.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
}

// CredentialsResponse par de credenciais geradas na aprovação.
// Divulgado uma única vez: a cópia persistida guarda apenas o hash.
type CredentialsResponse struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DecideEmpresaResponse saída da decisão sobre um cadastro.
type DecideEmpresaResponse struct {
	OK          bool                 `json:"ok"`
	Updated     EmpresaResponse      `json:"updated"`
	Credentials *CredentialsResponse `json:"credentials,omitempty"`
}

// EmpresaLoginRequest entrada do login de parceiro.
type EmpresaLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EmpresaSummary identificação mínima devolvida no login.
type EmpresaSummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
}

// EmpresaLoginResponse saída do login de parceiro.
type EmpresaLoginResponse struct {
	OK      bool           `json:"ok"`
	Empresa EmpresaSummary `json:"empresa"`
	Token   string         `json:"token"`
}
