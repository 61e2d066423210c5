package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina/internal/domain"
	"oficina/internal/pkg/validator"
	"oficina/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service contains all business logic for service orders.
type Service struct {
	orders  OrderRepositoryInterface
	filters SavedFilterRepositoryInterface
	now     func() time.Time
}

func NewService(orders OrderRepositoryInterface, filters SavedFilterRepositoryInterface) *Service {
	return &Service{
		orders:  orders,
		filters: filters,
		now:     time.Now,
	}
}

func generateNumero() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "OS-" + id[:8]
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// SQLite in dev mode reports constraint failures as plain strings.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*domain.ServiceOrder, error) {
	tipo := domain.OrderType(req.Tipo)
	if tipo != domain.TipoNormal && tipo != domain.TipoGarantia {
		return nil, ErrValidation
	}
	if req.Cliente == "" || req.Chassi == "" || req.Modelo == "" {
		return nil, ErrValidation
	}
	if req.ValorMaoDeObra < 0 || req.ValorPecas < 0 || req.ValorDeslocamento < 0 {
		return nil, ErrValidation
	}

	numero := strings.TrimSpace(req.Numero)
	if numero == "" {
		numero = generateNumero()
	}

	abertura := req.DataAbertura
	if abertura.IsZero() {
		abertura = s.now()
	}

	o := &domain.ServiceOrder{
		Numero:            numero,
		Tipo:              tipo,
		Status:            domain.StatusEmExecucao,
		DataAbertura:      abertura,
		TecnicoID:         req.TecnicoID,
		ConsultorID:       req.ConsultorID,
		Cliente:           req.Cliente,
		Modelo:            req.Modelo,
		Chassi:            req.Chassi,
		Descricao:         req.Descricao,
		ValorMaoDeObra:    req.ValorMaoDeObra,
		ValorPecas:        req.ValorPecas,
		ValorDeslocamento: req.ValorDeslocamento,
		// Total is always derived from the components; callers cannot
		// submit an inconsistent one.
		ValorTotal: req.ValorMaoDeObra + req.ValorPecas + req.ValorDeslocamento,
	}

	if fields := validator.Check(o); fields != nil {
		return nil, ErrValidation
	}

	if err := s.orders.Create(ctx, o); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumero
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*OrderView, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := viewOf(*o, s.now())
	return &v, nil
}

// List fetches orders with cheap server-side narrowing, then runs the full
// filter spec in memory and decorates each row with its aging fields.
func (s *Service) List(ctx context.Context, q repository.OrderQuery, spec FilterSpec) ([]OrderView, error) {
	rows, err := s.orders.List(ctx, q)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := ApplyFilters(rows, spec, now)

	out := make([]OrderView, 0, len(filtered))
	for _, o := range filtered {
		out = append(out, viewOf(o, now))
	}
	return out, nil
}

// UpdateStatus validates the transition and performs a single UPDATE with
// the new status plus whichever status-specific fields were supplied.
// Validation failure writes nothing.
func (s *Service) UpdateStatus(ctx context.Context, id int64, upd StatusUpdate) (*OrderView, error) {
	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := ValidateTransition(current.Status, upd); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, upd.Status, upd.fields(s.now())); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *Service) UpdateValores(ctx context.Context, id int64, req UpdateValoresRequest) (*OrderView, error) {
	if req.ValorMaoDeObra < 0 || req.ValorPecas < 0 || req.ValorDeslocamento < 0 {
		return nil, ErrValidation
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrOrderClosed
	}

	o.ValorMaoDeObra = req.ValorMaoDeObra
	o.ValorPecas = req.ValorPecas
	o.ValorDeslocamento = req.ValorDeslocamento
	o.ValorTotal = req.ValorMaoDeObra + req.ValorPecas + req.ValorDeslocamento

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	v := viewOf(*o, s.now())
	return &v, nil
}

func (s *Service) Assign(ctx context.Context, id int64, req AssignRequest) (*OrderView, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrOrderClosed
	}

	if req.TecnicoID != nil {
		o.TecnicoID = req.TecnicoID
	}
	if req.ConsultorID != nil {
		o.ConsultorID = req.ConsultorID
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	v := viewOf(*o, s.now())
	return &v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if o.Status.Terminal() {
		return ErrOrderClosed
	}

	err = s.orders.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// SaveFilter persists the last-applied filter spec for a user+screen as a
// versioned JSON envelope.
func (s *Service) SaveFilter(ctx context.Context, userID int64, screen string, spec FilterSpec) error {
	raw, err := encodeSavedFilter(spec)
	if err != nil {
		return err
	}
	return s.filters.Upsert(ctx, &domain.SavedFilter{
		UserID:  userID,
		Screen:  screen,
		Payload: raw,
	})
}

// LoadFilter restores the saved spec. A missing row, a parse failure or a
// version mismatch all fall back to the empty spec, never to an error.
func (s *Service) LoadFilter(ctx context.Context, userID int64, screen string) FilterSpec {
	f, err := s.filters.Get(ctx, userID, screen)
	if err != nil {
		return FilterSpec{}
	}
	spec, ok := decodeSavedFilter(f.Payload)
	if !ok {
		return FilterSpec{}
	}
	return spec
}
