// Package auth contém os casos de uso de contas de cliente: cadastro e login.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
	"github.com/ecofood/ecofood-api/pkg/jwt"
)

// Tamanho mínimo do password no cadastro.
const minPasswordLen = 6

// JWTConfig configuração para geração de tokens de cliente.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação de clientes.
type AuthUseCase struct {
	repo   repository.ClientRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(repo repository.ClientRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, jwtCfg: jwtCfg}
}

// Register cria a conta: email em minúsculas, password hasheado com bcrypt.
// Devolve domain.ErrEmailAlreadyExists quando o email já está cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterClientRequest) (*dto.RegisterClientResponse, error) {
	if in.Email == "" || in.Password == "" || len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	email := strings.ToLower(in.Email)
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	client := &entity.Client{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleCliente,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return &dto.RegisterClientResponse{OK: true, ID: client.ID}, nil
}

// Login verifica email (case-insensitive) e password. Qualquer falha devolve
// domain.ErrUnauthorized com uma única mensagem, sem enumerar contas.
func (uc *AuthUseCase) Login(in dto.ClientLoginRequest) (*dto.ClientLoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByEmail(strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, client.ID, client.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.ClientLoginResponse{OK: true, ID: client.ID, Role: client.Role, Token: token}, nil
}
