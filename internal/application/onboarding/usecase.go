// Package onboarding contém o fluxo de cadastro de empresas parceiras:
// submissão, decisão administrativa com emissão de credenciais e login.
package onboarding

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
	"github.com/ecofood/ecofood-api/pkg/jwt"
)

// Ações reconhecidas em Decide.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Tentativas de regeneração quando o email de credencial colide com um já
// emitido (índice único em credentials_email).
const maxEmailAttempts = 5

// JWTConfig configuração para geração de tokens de parceiro.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OnboardingUseCase casos de uso do ciclo de vida de um cadastro de parceiro.
type OnboardingUseCase struct {
	repo   repository.EmpresaRepository
	jwtCfg JWTConfig
}

// NewOnboardingUseCase constrói o caso de uso.
func NewOnboardingUseCase(repo repository.EmpresaRepository, jwtCfg JWTConfig) *OnboardingUseCase {
	return &OnboardingUseCase{repo: repo, jwtCfg: jwtCfg}
}

// Submit cadastra uma empresa em status pending, sem credenciais.
// Devolve domain.ErrInvalidInput quando companyName ou respName está vazio.
func (uc *OnboardingUseCase) Submit(in dto.SubmitEmpresaRequest) (*dto.EmpresaResponse, error) {
	if in.CompanyName == "" || in.RespName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Empresa{
		ID:                 uuid.New().String(),
		CompanyName:        in.CompanyName,
		CNPJ:               in.CNPJ,
		Location:           in.Location,
		RespName:           in.RespName,
		RespPhone:          in.RespPhone,
		PreferredMeetingAt: in.PreferredMeetingAt,
		Status:             entity.EmpresaStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmpresaResponse(e), nil
}

// Decide aprova ou rejeita um cadastro pending. Um cadastro já decidido
// devolve domain.ErrConflict, inclusive quando duas decisões concorrem pelo
// mesmo registro (o UPDATE condicional do repositório desempata). Na
// aprovação as credenciais geradas são divulgadas uma única vez na resposta;
// persistido fica apenas o hash do password.
func (uc *OnboardingUseCase) Decide(in dto.DecideEmpresaRequest) (*dto.DecideEmpresaResponse, error) {
	if in.ID == "" || (in.Action != ActionApprove && in.Action != ActionReject) {
		return nil, domain.ErrInvalidInput
	}
	e, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.Decided() {
		return nil, domain.ErrConflict
	}

	if in.Action == ActionReject {
		e.Status = entity.EmpresaStatusRejected
		e.UpdatedAt = time.Now()
		applied, err := uc.repo.ApplyDecision(e)
		if err != nil {
			return nil, err
		}
		if !applied {
			return nil, domain.ErrConflict
		}
		return &dto.DecideEmpresaResponse{OK: true, Updated: *toEmpresaResponse(e)}, nil
	}

	// approve: gerar credenciais; em colisão de email, regenerar e tentar de novo.
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		email, err := generateLoginEmail()
		if err != nil {
			return nil, err
		}
		password, err := generatePassword()
		if err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.Status = entity.EmpresaStatusApproved
		e.CredentialsEmail = email
		e.CredentialsHash = string(hash)
		e.UpdatedAt = time.Now()

		applied, err := uc.repo.ApplyDecision(e)
		if err == domain.ErrDuplicate {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !applied {
			return nil, domain.ErrConflict
		}
		return &dto.DecideEmpresaResponse{
			OK:          true,
			Updated:     *toEmpresaResponse(e),
			Credentials: &dto.CredentialsResponse{Email: email, Password: password},
		}, nil
	}
	return nil, domain.ErrConflict
}

// Authenticate valida o login de parceiro: somente empresas aprovadas, email
// de credencial exato e password conferido contra o hash bcrypt. Qualquer
// falha devolve domain.ErrUnauthorized, sem distinguir email de password.
func (uc *OnboardingUseCase) Authenticate(in dto.EmpresaLoginRequest) (*dto.EmpresaLoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	e, err := uc.repo.FindApprovedByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.CredentialsHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, e.ID, entity.RoleEmpresa, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.EmpresaLoginResponse{
		OK:      true,
		Empresa: dto.EmpresaSummary{ID: e.ID, CompanyName: e.CompanyName},
		Token:   token,
	}, nil
}

// ListAll devolve todos os cadastros para revisão administrativa.
func (uc *OnboardingUseCase) ListAll() (*dto.EmpresaListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{Items: items}, nil
}

// Profile devolve o próprio cadastro do parceiro autenticado.
func (uc *OnboardingUseCase) Profile(empresaID string) (*dto.EmpresaResponse, error) {
	e, err := uc.repo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmpresaResponse(e), nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:                 e.ID,
		CompanyName:        e.CompanyName,
		CNPJ:               e.CNPJ,
		Location:           e.Location,
		RespName:           e.RespName,
		RespPhone:          e.RespPhone,
		PreferredMeetingAt: e.PreferredMeetingAt,
		Status:             e.Status,
		CredentialsEmail:   e.CredentialsEmail,
		CreatedAt:          e.CreatedAt,
	}
}
