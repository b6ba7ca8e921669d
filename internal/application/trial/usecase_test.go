package trial_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertmvp/offert-api/internal/application/trial"
	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	byEmail map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.byEmail[email], nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) UpsertTrial(id, email string, expiresAt time.Time) (*entity.Account, error) {
	if acc, ok := r.byEmail[email]; ok {
		exp := expiresAt
		acc.TrialExpiresAt = &exp
		return acc, nil
	}
	exp := expiresAt
	acc := &entity.Account{ID: id, Email: email, TrialExpiresAt: &exp, CreatedAt: time.Now()}
	r.byEmail[email] = acc
	return acc, nil
}

type fakeCodeRepo struct {
	byCode map[string]*entity.TrialCode
	// consumeLoses fuerza que Consume devuelva false aunque GetByCode haya
	// visto el código libre (simula perder la carrera contra otra activación).
	consumeLoses bool
}

func newFakeCodeRepo(codes ...*entity.TrialCode) *fakeCodeRepo {
	r := &fakeCodeRepo{byCode: map[string]*entity.TrialCode{}}
	for _, c := range codes {
		r.byCode[c.Code] = c
	}
	return r
}

func (r *fakeCodeRepo) GetByCode(code string) (*entity.TrialCode, error) {
	return r.byCode[code], nil
}

func (r *fakeCodeRepo) Consume(code, accountID string, usedAt time.Time) (bool, error) {
	tc, ok := r.byCode[code]
	if !ok || tc.Used || r.consumeLoses {
		return false, nil
	}
	tc.Used = true
	tc.UsedAt = &usedAt
	tc.UsedByID = &accountID
	return true, nil
}

// fakeTxRunner pasa los mismos fakes al callback; si fn falla, descarta nada
// (los fakes no simulan rollback, los tests solo verifican el error).
type fakeTxRunner struct {
	accounts *fakeAccountRepo
	codes    *fakeCodeRepo
}

func (r *fakeTxRunner) RunActivation(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	codeRepo repository.TrialCodeRepository,
) error) error {
	return fn(r.accounts, r.codes)
}

func buildUseCase(codes *fakeCodeRepo) (*trial.UseCase, *fakeAccountRepo) {
	accounts := newFakeAccountRepo()
	uc := trial.NewUseCase(accounts, codes, &fakeTxRunner{accounts: accounts, codes: codes})
	return uc, accounts
}

// ──────────────────────────────────────────────────────────────────────────────
// Activate
// ──────────────────────────────────────────────────────────────────────────────

func TestActivate_CodigoFresco_CreaCuentaYVence7Dias(t *testing.T) {
	codes := newFakeCodeRepo(&entity.TrialCode{ID: "tc-1", Code: "ABC123"})
	uc, accounts := buildUseCase(codes)

	before := time.Now()
	acc, err := uc.Activate(context.Background(), "anna@example.se", "ABC123")
	require.NoError(t, err)

	assert.Equal(t, "anna@example.se", acc.Email)
	assert.NotEmpty(t, acc.ID)
	assert.WithinDuration(t, before.Add(trial.TrialDuration), acc.TrialExpiresAt, 5*time.Second)

	// El código quedó consumido y apunta a la cuenta creada.
	tc := codes.byCode["ABC123"]
	assert.True(t, tc.Used)
	require.NotNil(t, tc.UsedByID)
	assert.Equal(t, acc.ID, *tc.UsedByID)

	stored, _ := accounts.GetByEmail("anna@example.se")
	require.NotNil(t, stored)
	assert.Equal(t, acc.ID, stored.ID)
}

func TestActivate_CuentaExistente_ExtiendeTrial(t *testing.T) {
	codes := newFakeCodeRepo(&entity.TrialCode{ID: "tc-2", Code: "XYZ789"})
	uc, accounts := buildUseCase(codes)

	old := time.Now().Add(-time.Hour)
	accounts.byEmail["anna@example.se"] = &entity.Account{
		ID: "acc-1", Email: "anna@example.se", TrialExpiresAt: &old,
	}

	acc, err := uc.Activate(context.Background(), "anna@example.se", "XYZ789")
	require.NoError(t, err)

	// Misma cuenta, nuevo vencimiento.
	assert.Equal(t, "acc-1", acc.ID)
	assert.True(t, acc.TrialExpiresAt.After(time.Now()))
}

func TestActivate_CodigoInexistente(t *testing.T) {
	uc, _ := buildUseCase(newFakeCodeRepo())

	_, err := uc.Activate(context.Background(), "anna@example.se", "NOPE")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestActivate_CodigoYaUsado(t *testing.T) {
	codes := newFakeCodeRepo(&entity.TrialCode{ID: "tc-3", Code: "ABC123", Used: true})
	uc, accounts := buildUseCase(codes)

	_, err := uc.Activate(context.Background(), "anna@example.se", "ABC123")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	// No debe quedar cuenta creada por un código inválido.
	acc, _ := accounts.GetByEmail("anna@example.se")
	assert.Nil(t, acc)
}

// Carrera: GetByCode vio el código libre pero el update condicional pierde
// contra otra activación concurrente → ErrInvalidCode, nunca doble gasto.
func TestActivate_PierdeCarreraDeConsumo(t *testing.T) {
	codes := newFakeCodeRepo(&entity.TrialCode{ID: "tc-4", Code: "RACE01"})
	codes.consumeLoses = true
	uc, _ := buildUseCase(codes)

	_, err := uc.Activate(context.Background(), "anna@example.se", "RACE01")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_SinCuenta(t *testing.T) {
	uc, _ := buildUseCase(newFakeCodeRepo())

	_, err := uc.Authorize("nadie@example.se")
	assert.ErrorIs(t, err, domain.ErrTrialRequired)
}

func TestAuthorize_CuentaSinTrial(t *testing.T) {
	uc, accounts := buildUseCase(newFakeCodeRepo())
	accounts.byEmail["anna@example.se"] = &entity.Account{ID: "acc-1", Email: "anna@example.se"}

	_, err := uc.Authorize("anna@example.se")
	assert.ErrorIs(t, err, domain.ErrTrialRequired)
}

func TestAuthorize_TrialVencido(t *testing.T) {
	uc, accounts := buildUseCase(newFakeCodeRepo())
	past := time.Now().Add(-time.Minute)
	accounts.byEmail["anna@example.se"] = &entity.Account{
		ID: "acc-1", Email: "anna@example.se", TrialExpiresAt: &past,
	}

	_, err := uc.Authorize("anna@example.se")
	assert.ErrorIs(t, err, domain.ErrTrialExpired)
}

func TestAuthorize_TrialActivo(t *testing.T) {
	uc, accounts := buildUseCase(newFakeCodeRepo())
	future := time.Now().Add(48 * time.Hour)
	accounts.byEmail["anna@example.se"] = &entity.Account{
		ID: "acc-1", Email: "anna@example.se", TrialExpiresAt: &future,
	}

	acc, err := uc.Authorize("anna@example.se")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", acc.ID)
}
