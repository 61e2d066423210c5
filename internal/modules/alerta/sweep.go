package alerta

import (
	"context"
	"fmt"
	"log"
	"time"

	"oficina/internal/domain"
	"oficina/internal/repository"
)

// Sweeper generates alerts from the current order backlog. It is the
// server-side automation the dashboard only consumes: overdue orders,
// stale warranty orders and parts about to arrive.
type Sweeper struct {
	alertas AlertaRepositoryInterface
	orders  OrderSourceInterface
	users   UserSourceInterface
	hub     *Hub
	now     func() time.Time
}

func NewSweeper(alertas AlertaRepositoryInterface, orders OrderSourceInterface, users UserSourceInterface, hub *Hub) *Sweeper {
	return &Sweeper{
		alertas: alertas,
		orders:  orders,
		users:   users,
		hub:     hub,
		now:     time.Now,
	}
}

// SweepConfig holds the sweep thresholds and scheduling knobs.
type SweepConfig struct {
	OverdueDays       int           // orders older than this get an URGENTE alert
	WarrantyStaleDays int           // warranty orders older than this get an ALTA alert
	PartsWindowDays   int           // parts arriving within this window get a NORMAL alert
	DedupWindow       time.Duration // do not repeat the same alert for an order within this window
	Interval          time.Duration // how often the scheduled sweep runs
	RetentionDays     int           // read alerts older than this are purged
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		OverdueDays:       90,
		WarrantyStaleDays: 30,
		PartsWindowDays:   3,
		DedupWindow:       24 * time.Hour,
		Interval:          30 * time.Second,
		RetentionDays:     90,
	}
}

// Run executes one full sweep. Per-order failures are logged and skipped so
// one bad row never stops the rest of the backlog.
func (s *Sweeper) Run(ctx context.Context, cfg SweepConfig) (int, error) {
	now := s.now()
	created := 0

	managers, err := s.users.ListByRole(ctx, domain.RoleGerente)
	if err != nil {
		return 0, err
	}

	// The age-based rules share one fetch: the warranty threshold is the
	// loosest of the two.
	cutoff := now.AddDate(0, 0, -cfg.WarrantyStaleDays)
	orders, err := s.orders.ListOpenOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for i := range orders {
		o := &orders[i]
		days := domain.DaysOpen(o.DataAbertura, now)

		if days > cfg.OverdueDays {
			n, err := s.emit(ctx, o, managers, domain.AlertaOSAtrasada, domain.PrioridadeUrgente,
				fmt.Sprintf("OS %s atrasada", o.Numero),
				fmt.Sprintf("Aberta há %d dias (cliente %s)", days, o.Cliente),
				cfg.DedupWindow, now)
			if err != nil {
				log.Printf("sweep: overdue alert for order %d failed: %v", o.ID, err)
				continue
			}
			created += n
			continue
		}

		if o.Tipo == domain.TipoGarantia && days > cfg.WarrantyStaleDays {
			n, err := s.emit(ctx, o, managers, domain.AlertaGarantiaPendente, domain.PrioridadeAlta,
				fmt.Sprintf("Garantia pendente: OS %s", o.Numero),
				fmt.Sprintf("OS de garantia aberta há %d dias", days),
				cfg.DedupWindow, now)
			if err != nil {
				log.Printf("sweep: warranty alert for order %d failed: %v", o.ID, err)
				continue
			}
			created += n
		}
	}

	// Parts arrivals are status-based, not age-based, so a fresh order
	// waiting on parts still gets its heads-up.
	waiting, err := s.orders.List(ctx, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)})
	if err != nil {
		return created, err
	}
	for i := range waiting {
		o := &waiting[i]
		if o.PrevisaoChegada == nil {
			continue
		}
		until := o.PrevisaoChegada.Sub(now)
		if until < 0 || until > time.Duration(cfg.PartsWindowDays)*24*time.Hour {
			continue
		}
		n, err := s.emit(ctx, o, managers, domain.AlertaPecasChegando, domain.PrioridadeNormal,
			fmt.Sprintf("Peças chegando: OS %s", o.Numero),
			fmt.Sprintf("Previsão de chegada %s", o.PrevisaoChegada.Format("02/01/2006")),
			cfg.DedupWindow, now)
		if err != nil {
			log.Printf("sweep: parts alert for order %d failed: %v", o.ID, err)
			continue
		}
		created += n
	}

	if cfg.RetentionDays > 0 {
		if purged, err := s.alertas.DeleteOlderThan(ctx, time.Duration(cfg.RetentionDays*24)*time.Hour); err != nil {
			log.Printf("sweep: purge of old alerts failed: %v", err)
		} else if purged > 0 {
			log.Printf("sweep: purged %d read alerts", purged)
		}
	}

	return created, nil
}

// emit creates one alert per recipient: the order's consultant plus every
// manager, deduplicated by (order, type) within the window.
func (s *Sweeper) emit(ctx context.Context, o *domain.ServiceOrder, managers []domain.User,
	tipo domain.AlertaType, prio domain.AlertaPriority, titulo, mensagem string,
	dedup time.Duration, now time.Time) (int, error) {

	recent, err := s.alertas.HasRecentForOrder(ctx, o.ID, tipo, now.Add(-dedup))
	if err != nil {
		return 0, err
	}
	if recent {
		return 0, nil
	}

	seen := map[int64]bool{}
	recipients := make([]int64, 0, len(managers)+1)
	if o.ConsultorID != nil {
		recipients = append(recipients, *o.ConsultorID)
		seen[*o.ConsultorID] = true
	}
	for _, m := range managers {
		if !seen[m.ID] {
			recipients = append(recipients, m.ID)
			seen[m.ID] = true
		}
	}

	created := 0
	for _, userID := range recipients {
		orderID := o.ID
		a := &domain.Alerta{
			UserID:     userID,
			OrderID:    &orderID,
			Tipo:       tipo,
			Prioridade: prio,
			Titulo:     titulo,
			Mensagem:   mensagem,
		}
		if err := s.alertas.Create(ctx, a); err != nil {
			return created, err
		}
		created++

		if s.hub != nil && s.hub.IsOnline(userID) {
			if unread, err := s.alertas.CountUnread(ctx, userID); err == nil {
				s.hub.PushUnread(userID, unread)
			}
		}
	}
	return created, nil
}

// Schedule starts a background goroutine running the sweep on a fixed
// interval. The returned channel stops it; context cancellation does too.
func (s *Sweeper) Schedule(ctx context.Context, cfg SweepConfig) chan struct{} {
	stopCh := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if created, err := s.Run(ctx, cfg); err != nil {
					log.Printf("scheduled sweep error: %v", err)
				} else if created > 0 {
					log.Printf("scheduled sweep created %d alerts", created)
				}
			case <-stopCh:
				log.Println("scheduled sweep stopped")
				return
			case <-ctx.Done():
				log.Println("scheduled sweep stopped (context done)")
				return
			}
		}
	}()

	log.Printf("scheduled sweep started with interval %v", cfg.Interval)
	return stopCh
}
