package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"oficina/internal/database"
	"oficina/internal/domain"
	"oficina/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "oficina.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM alertas")
	db.Exec("DELETE FROM pendencias")
	db.Exec("DELETE FROM saved_filters")
	db.Exec("DELETE FROM ordens_servico")
	db.Exec("DELETE FROM veiculos")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	orders := repository.NewOrderRepository(db)
	pendencias := repository.NewPendenciaRepository(db)
	vehicles := repository.NewVehicleRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	gerente := createUser(ctx, users, "gerente@oficina.com", "gerente123", "Carlos Mendes", domain.RoleGerente)
	garantia := createUser(ctx, users, "garantia@oficina.com", "garantia123", "Ana Paula", domain.RoleConsultorGarantia)
	vendas := createUser(ctx, users, "vendas@oficina.com", "vendas123", "Roberto Silva", domain.RoleConsultorVendas)

	tecnicos := make([]*domain.User, 0, 3)
	for i, name := range []string{"João Pereira", "Marcos Lima", "Felipe Costa"} {
		t := createUser(ctx, users,
			fmt.Sprintf("tecnico%d@oficina.com", i+1), "tecnico123", name, domain.RoleTecnico)
		tecnicos = append(tecnicos, t)
	}
	log.Printf("Manager: gerente@oficina.com / gerente123")

	// ================== ORDERS ==================
	log.Println("Creating service orders...")

	clientes := []string{
		"Fazenda Boa Vista", "Agro Santa Rita", "Sítio Recanto Verde",
		"Cooperativa Vale do Sol", "Fazenda Três Irmãos",
	}
	modelos := []string{"Trator 6110J", "Colheitadeira S540", "Pulverizador M4025", "Plantadeira DB74"}
	statuses := []domain.OrderStatus{
		domain.StatusEmExecucao,
		domain.StatusAguardandoPecas,
		domain.StatusEmDiagnostico,
		domain.StatusPausada,
		domain.StatusConcluida,
	}

	now := time.Now()
	for i := 0; i < 25; i++ {
		consultor := vendas
		tipo := domain.TipoNormal
		if i%3 == 0 {
			consultor = garantia
			tipo = domain.TipoGarantia
		}
		tecnico := tecnicos[i%len(tecnicos)]
		status := statuses[i%len(statuses)]
		abertura := now.AddDate(0, 0, -rand.Intn(120))

		mo := float64(rand.Intn(5000)) + 500
		pecas := float64(rand.Intn(8000))
		desloc := float64(rand.Intn(1000))

		o := &domain.ServiceOrder{
			Numero:            fmt.Sprintf("OS-2026%04d", i+1),
			Tipo:              tipo,
			Status:            status,
			DataAbertura:      abertura,
			TecnicoID:         &tecnico.ID,
			ConsultorID:       &consultor.ID,
			Cliente:           clientes[i%len(clientes)],
			Modelo:            modelos[i%len(modelos)],
			Chassi:            fmt.Sprintf("1BZ%07d", 1000000+i),
			Descricao:         "Revisão e reparo conforme reclamação do cliente",
			ValorMaoDeObra:    mo,
			ValorPecas:        pecas,
			ValorDeslocamento: desloc,
			ValorTotal:        mo + pecas + desloc,
		}
		if status == domain.StatusAguardandoPecas {
			o.NumeroPedido = fmt.Sprintf("PED-%05d", 10000+i)
			chegada := now.AddDate(0, 0, rand.Intn(10))
			o.PrevisaoChegada = &chegada
		}
		if status == domain.StatusPausada {
			o.MotivoPausa = "Aguardando autorização do cliente"
		}
		if status == domain.StatusConcluida {
			fechamento := abertura.AddDate(0, 0, rand.Intn(30)+1)
			o.DataFechamento = &fechamento
		}
		if err := orders.Create(ctx, o); err != nil {
			log.Fatal("order seed failed:", err)
		}

		if i%5 == 0 {
			p := &domain.Pendencia{
				OrderID:      o.ID,
				Tipo:         domain.PendenciaPecas,
				Status:       domain.PendenciaPendente,
				Descricao:    "Peça sem previsão no fornecedor",
				Responsavel:  consultor.Name,
				DataAbertura: abertura.AddDate(0, 0, 1),
			}
			if err := pendencias.Create(ctx, p); err != nil {
				log.Fatal("pendencia seed failed:", err)
			}
		}
	}
	_ = gerente

	// ================== FLEET ==================
	log.Println("Creating fleet...")

	placas := []string{"ABC1D23", "DEF4G56", "GHI7J89", "JKL0M12"}
	for i, placa := range placas {
		v := &domain.Vehicle{
			Placa:    placa,
			Modelo:   "Saveiro Robust",
			Marca:    "Volkswagen",
			Ano:      2021 + i%3,
			Odometro: int64(30000 + rand.Intn(80000)),
			Status:   domain.VeiculoDisponivel,
		}
		if i == 0 {
			v.Status = domain.VeiculoEmUso
			v.TecnicoID = &tecnicos[0].ID
		}
		if err := vehicles.Create(ctx, v); err != nil {
			log.Fatal("vehicle seed failed:", err)
		}
	}

	log.Println("Seed completed")
}

func createUser(ctx context.Context, users *repository.UserRepository, email, password, name string, role domain.UserRole) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
		Active:       true,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal("user seed failed:", err)
	}
	return u
}
