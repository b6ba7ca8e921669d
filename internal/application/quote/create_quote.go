package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/offertmvp/offert-api/internal/application/dto"
	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/pricing"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// CreateUseCase crea una oferta: gate de trial, resolución de cliente,
// cálculo de montos y persistencia atómica de cabecera + líneas.
type CreateUseCase struct {
	txRunner     QuoteTxRunner
	trialGate    TrialGate
	customerRepo repository.CustomerRepository
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(
	txRunner QuoteTxRunner,
	trialGate TrialGate,
	customerRepo repository.CustomerRepository,
) *CreateUseCase {
	return &CreateUseCase{txRunner: txRunner, trialGate: trialGate, customerRepo: customerRepo}
}

// Create valida, autoriza y persiste la oferta. Los errores del gate de trial
// se propagan sin cambios; el resto de la validación semántica devuelve
// ErrInvalidInput.
func (uc *CreateUseCase) Create(ctx context.Context, in dto.CreateQuoteRequest) (*dto.CreateQuoteResponse, error) {
	var validUntil *time.Time
	if in.ValidUntil != "" {
		t, err := time.Parse("2006-01-02", in.ValidUntil)
		if err != nil {
			return nil, fmt.Errorf("%w: validUntil no es una fecha YYYY-MM-DD", domain.ErrInvalidInput)
		}
		validUntil = &t
	}

	items := make([]pricing.Item, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, pricing.Item{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	// Trial gate antes de tocar nada.
	account, err := uc.trialGate.Authorize(in.AccountEmail)
	if err != nil {
		return nil, err
	}

	// Montos en öre. Calculate también rechaza cantidades/precios inválidos
	// que el parser de body no pudo filtrar.
	totals, err := pricing.Calculate(items)
	if err != nil {
		return nil, err
	}

	customer, err := uc.resolveCustomer(account.ID, in.Customer)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	q := &entity.Quote{
		ID:         uuid.New().String(),
		AccountID:  account.ID,
		CustomerID: customer.ID,
		CreatedAt:  now,
		ValidUntil: validUntil,
		Subtotal:   totals.Subtotal,
		VAT:        totals.VAT,
		Total:      totals.Total,
		Currency:   totals.Currency,
	}

	// Cabecera + líneas en una sola transacción: o entra todo o no entra nada.
	err = uc.txRunner.RunQuote(ctx, func(
		_ repository.CustomerRepository,
		quoteRepo repository.QuoteRepository,
	) error {
		if err := quoteRepo.Create(q); err != nil {
			return err
		}
		for _, line := range totals.Lines {
			item := &entity.QuoteItem{
				ID:        uuid.New().String(),
				QuoteID:   q.ID,
				Title:     line.Title,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				LineTotal: line.LineTotal,
			}
			if err := quoteRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateQuoteResponse{
		QuoteID: q.ID,
		Totals: dto.QuoteTotals{
			Subtotal: totals.Subtotal,
			VAT:      totals.VAT,
			Total:    totals.Total,
			Currency: totals.Currency,
		},
	}, nil
}

// resolveCustomer busca el cliente por (cuenta, nombre exacto, email exacto)
// y lo crea si no existe. Email vacío en el request se guarda como NULL, de
// modo que "sin email" matchea solo clientes sin email.
func (uc *CreateUseCase) resolveCustomer(accountID string, in dto.QuoteCustomerRequest) (*entity.Customer, error) {
	email := optional(in.Email)
	existing, err := uc.customerRepo.FindByAccountNameEmail(accountID, in.Name, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      in.Name,
		Email:     email,
		Phone:     optional(in.Phone),
		OrgNumber: optional(in.OrgNumber),
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
