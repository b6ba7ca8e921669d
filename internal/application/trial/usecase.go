package trial

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/offertmvp/offert-api/internal/application/dto"
	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// TrialDuration duración del trial desde la activación.
const TrialDuration = 7 * 24 * time.Hour

// ActivationTxRunner ejecuta una función dentro de una transacción con los
// repos de cuenta y código atados a la misma tx.
type ActivationTxRunner interface {
	RunActivation(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		codeRepo repository.TrialCodeRepository,
	) error) error
}

// UseCase gate de trial: activa códigos y autoriza la creación de ofertas.
type UseCase struct {
	accountRepo repository.AccountRepository
	codeRepo    repository.TrialCodeRepository
	txRunner    ActivationTxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	accountRepo repository.AccountRepository,
	codeRepo repository.TrialCodeRepository,
	txRunner ActivationTxRunner,
) *UseCase {
	return &UseCase{accountRepo: accountRepo, codeRepo: codeRepo, txRunner: txRunner}
}

// Activate consume un código de un solo uso y crea o extiende el trial de la
// cuenta a ahora + 7 días. Código inexistente o ya usado → ErrInvalidCode.
//
// Upsert de cuenta y consumo del código van en una sola transacción; el
// consumo es un update condicional (WHERE used = false), así que si dos
// activaciones del mismo código corren en paralelo solo una gana y la otra
// hace rollback con ErrInvalidCode.
func (uc *UseCase) Activate(ctx context.Context, email, code string) (*dto.TrialAccount, error) {
	tc, err := uc.codeRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if tc == nil || tc.Used {
		return nil, domain.ErrInvalidCode
	}

	now := time.Now()
	expiresAt := now.Add(TrialDuration)
	candidateID := uuid.New().String() // usado solo si la cuenta no existe

	var account *entity.Account
	err = uc.txRunner.RunActivation(ctx, func(
		accountRepo repository.AccountRepository,
		codeRepo repository.TrialCodeRepository,
	) error {
		acc, err := accountRepo.UpsertTrial(candidateID, email, expiresAt)
		if err != nil {
			return err
		}
		consumed, err := codeRepo.Consume(code, acc.ID, now)
		if err != nil {
			return err
		}
		if !consumed {
			return domain.ErrInvalidCode
		}
		account = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.TrialAccount{
		ID:             account.ID,
		Email:          account.Email,
		TrialExpiresAt: expiresAt,
	}, nil
}

// Authorize verifica que la cuenta puede crear ofertas y la devuelve.
// Sin cuenta o sin trial activado → ErrTrialRequired; vencido → ErrTrialExpired.
func (uc *UseCase) Authorize(email string) (*entity.Account, error) {
	acc, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.TrialExpiresAt == nil {
		return nil, domain.ErrTrialRequired
	}
	if time.Now().After(*acc.TrialExpiresAt) {
		return nil, domain.ErrTrialExpired
	}
	return acc, nil
}
