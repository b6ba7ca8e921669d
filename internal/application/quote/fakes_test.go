package quote_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	appquote "github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers []*entity.Customer
	createErr error
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.customers = append(r.customers, c)
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) FindByAccountNameEmail(accountID, name string, email *string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.AccountID != accountID || c.Name != name {
			continue
		}
		if (c.Email == nil) != (email == nil) {
			continue
		}
		if email != nil && *c.Email != *email {
			continue
		}
		return c, nil
	}
	return nil, nil
}

type fakeQuoteRepo struct {
	quotes    map[string]*entity.Quote
	items     map[string][]*entity.QuoteItem
	createErr error
	itemErr   error
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: map[string]*entity.Quote{}, items: map[string][]*entity.QuoteItem{}}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.quotes[q.ID] = q
	return nil
}

func (r *fakeQuoteRepo) CreateItem(it *entity.QuoteItem) error {
	if r.itemErr != nil {
		return r.itemErr
	}
	r.items[it.QuoteID] = append(r.items[it.QuoteID], it)
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	return r.quotes[id], nil
}

func (r *fakeQuoteRepo) GetItemsByQuoteID(quoteID string) ([]*entity.QuoteItem, error) {
	return r.items[quoteID], nil
}

type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (r *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) UpsertTrial(id, email string, expiresAt time.Time) (*entity.Account, error) {
	return nil, errors.New("no usado en estos tests")
}

// fakeTxRunner ejecuta el callback con los fakes. Si rollback=true, descarta
// las ofertas creadas cuando fn devuelve error (simula el rollback real).
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	quotes    *fakeQuoteRepo
	beginErr  error
}

func (r *fakeTxRunner) RunQuote(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	quoteRepo repository.QuoteRepository,
) error) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	return fn(r.customers, r.quotes)
}

// fakeGate devuelve una cuenta fija o un error de trial.
type fakeGate struct {
	account *entity.Account
	err     error
}

func (g *fakeGate) Authorize(email string) (*entity.Account, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.account, nil
}

// fakeRenderer registra si fue invocado; puede fallar a pedido.
type fakeRenderer struct {
	called bool
	fail   bool
	pdf    []byte
}

func (r *fakeRenderer) RenderPDF(ctx context.Context, doc *appquote.Document) ([]byte, error) {
	r.called = true
	if r.fail {
		return nil, fmt.Errorf("%w: chromium se cayó", domain.ErrRenderingFailed)
	}
	if r.pdf == nil {
		return []byte("%PDF-1.4 fake"), nil
	}
	return r.pdf, nil
}

type fakeEmailTpl struct{}

func (fakeEmailTpl) EmailBody(doc *appquote.Document) (string, error) {
	return "<html>Offert " + doc.Quote.ID + "</html>", nil
}

// fakeMailer captura el mensaje enviado; puede fallar a pedido.
type fakeMailer struct {
	sent   []appquote.OutgoingMail
	fail   bool
	called bool
}

func (m *fakeMailer) Send(ctx context.Context, mail appquote.OutgoingMail) error {
	m.called = true
	if m.fail {
		return fmt.Errorf("%w: resend devolvió 500", domain.ErrDeliveryFailed)
	}
	m.sent = append(m.sent, mail)
	return nil
}
