package fleet

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"oficina/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service manages the courtesy/service vehicle fleet. A vehicle can only be
// handed to a technician while DISPONIVEL; releasing it brings it back.
type Service struct {
	vehicles VehicleRepositoryInterface
}

func NewService(vehicles VehicleRepositoryInterface) *Service {
	return &Service{vehicles: vehicles}
}

// placaPattern accepts both the legacy Brazilian plate (ABC1234) and the
// Mercosul format (ABC1D23).
var placaPattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

func normalizePlaca(placa string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(placa), "-", ""))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Service) Create(ctx context.Context, req CreateVehicleRequest) (*domain.Vehicle, error) {
	placa := normalizePlaca(req.Placa)
	if !placaPattern.MatchString(placa) || req.Modelo == "" {
		return nil, ErrValidation
	}

	v := &domain.Vehicle{
		Placa:  placa,
		Modelo: req.Modelo,
		Marca:  req.Marca,
		Ano:    req.Ano,
		Cor:    req.Cor,
		Status: domain.VeiculoDisponivel,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePlaca
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Vehicle, error) {
	st := domain.VehicleStatus(status)
	if status != "" && !st.Valid() {
		return nil, ErrValidation
	}
	return s.vehicles.List(ctx, st)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Modelo != nil {
		if *req.Modelo == "" {
			return nil, ErrValidation
		}
		v.Modelo = *req.Modelo
	}
	if req.Marca != nil {
		v.Marca = *req.Marca
	}
	if req.Ano != nil {
		v.Ano = *req.Ano
	}
	if req.Cor != nil {
		v.Cor = *req.Cor
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Allocate hands the vehicle to a technician. Only an available vehicle can
// be allocated; the optional odometer reading must not go backwards.
func (s *Service) Allocate(ctx context.Context, id int64, req AllocateRequest) (*domain.Vehicle, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != domain.VeiculoDisponivel {
		return nil, ErrNotAvailable
	}
	if req.Odometro > 0 && req.Odometro < v.Odometro {
		return nil, ErrOdometerBack
	}

	tecnicoID := req.TecnicoID
	if err := s.vehicles.UpdateAllocation(ctx, id, domain.VeiculoEmUso, &tecnicoID, req.Odometro); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Release returns the vehicle to the pool and clears the technician.
func (s *Service) Release(ctx context.Context, id int64, req ReleaseRequest) (*domain.Vehicle, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != domain.VeiculoEmUso {
		return nil, ErrNotAllocated
	}
	if req.Odometro > 0 && req.Odometro < v.Odometro {
		return nil, ErrOdometerBack
	}

	if err := s.vehicles.UpdateAllocation(ctx, id, domain.VeiculoDisponivel, nil, req.Odometro); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// SetStatus moves a vehicle into MANUTENCAO or INATIVO, or back to
// DISPONIVEL. Allocation changes go through Allocate/Release.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*domain.Vehicle, error) {
	st := domain.VehicleStatus(status)
	if st != domain.VeiculoDisponivel && st != domain.VeiculoManutencao && st != domain.VeiculoInativo {
		return nil, ErrValidation
	}

	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status == domain.VeiculoEmUso {
		return nil, ErrNotAvailable
	}

	if err := s.vehicles.UpdateAllocation(ctx, id, st, nil, 0); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
