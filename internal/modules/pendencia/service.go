package pendencia

import (
	"context"
	"errors"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

// Service contains business logic for pendencias. A pendencia always belongs
// to an existing order; resolving it stamps the resolution date.
type Service struct {
	pendencias PendenciaRepositoryInterface
	orders     OrderSourceInterface
	now        func() time.Time
}

func NewService(pendencias PendenciaRepositoryInterface, orders OrderSourceInterface) *Service {
	return &Service{
		pendencias: pendencias,
		orders:     orders,
		now:        time.Now,
	}
}

func validTipo(t domain.PendenciaType) bool {
	switch t {
	case domain.PendenciaPecas, domain.PendenciaServico, domain.PendenciaTerceiros,
		domain.PendenciaGarantia, domain.PendenciaCliente, domain.PendenciaOutros:
		return true
	}
	return false
}

func validStatus(s domain.PendenciaStatus) bool {
	switch s {
	case domain.PendenciaPendente, domain.PendenciaEmAndamento,
		domain.PendenciaResolvida, domain.PendenciaCanceladaSts:
		return true
	}
	return false
}

func (s *Service) Create(ctx context.Context, req CreatePendenciaRequest) (*domain.Pendencia, error) {
	tipo := domain.PendenciaType(req.Tipo)
	if !validTipo(tipo) || req.Descricao == "" {
		return nil, ErrValidation
	}

	if _, err := s.orders.GetByID(ctx, req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	p := &domain.Pendencia{
		OrderID:      req.OrderID,
		Tipo:         tipo,
		Status:       domain.PendenciaPendente,
		Descricao:    req.Descricao,
		Responsavel:  req.Responsavel,
		DataAbertura: s.now(),
		DataPrevista: req.DataPrevista,
	}
	if err := s.pendencias.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Pendencia, error) {
	p, err := s.pendencias.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]domain.Pendencia, error) {
	return s.pendencias.ListByOrder(ctx, orderID)
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.Pendencia, error) {
	return s.pendencias.ListOpen(ctx)
}

// Update edits the mutable fields. Moving a pendencia into RESOLVIDA or
// CANCELADA this way also stamps the resolution date; reopening clears it.
func (s *Service) Update(ctx context.Context, id int64, req UpdatePendenciaRequest) (*domain.Pendencia, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Tipo != nil {
		tipo := domain.PendenciaType(*req.Tipo)
		if !validTipo(tipo) {
			return nil, ErrValidation
		}
		p.Tipo = tipo
	}
	if req.Status != nil {
		status := domain.PendenciaStatus(*req.Status)
		if !validStatus(status) {
			return nil, ErrValidation
		}
		if p.Status.Open() && !status.Open() {
			t := s.now()
			p.DataResolvida = &t
		}
		if !p.Status.Open() && status.Open() {
			p.DataResolvida = nil
		}
		p.Status = status
	}
	if req.Descricao != nil {
		if *req.Descricao == "" {
			return nil, ErrValidation
		}
		p.Descricao = *req.Descricao
	}
	if req.Responsavel != nil {
		p.Responsavel = *req.Responsavel
	}
	if req.DataPrevista != nil {
		p.DataPrevista = req.DataPrevista
	}

	if err := s.pendencias.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Resolve closes an open pendencia, as RESOLVIDA or CANCELADA.
func (s *Service) Resolve(ctx context.Context, id int64, req ResolvePendenciaRequest) (*domain.Pendencia, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Status.Open() {
		return nil, ErrAlreadyResolved
	}

	if req.Cancelar {
		p.Status = domain.PendenciaCanceladaSts
	} else {
		p.Status = domain.PendenciaResolvida
	}
	t := s.now()
	p.DataResolvida = &t

	if err := s.pendencias.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.pendencias.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
