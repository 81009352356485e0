// seed_admin crea la primera cuenta de administrador en PostgreSQL.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
// Si el email ya existe no hace nada. Con DB_AUTO_MIGRATE=true aplica antes el esquema.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/StoreRating-api/internal/application/auth"
	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/postgres"
	"github.com/jhoicas/StoreRating-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	seed := cfg.Seed
	email := auth.NormalizeEmail(seed.AdminEmail)
	if email == "" || seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	if !dto.ValidPassword(seed.AdminPassword) {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD: 8 a 16 caracteres, con una mayúscula y un carácter especial")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migrar: %v\n", err)
			os.Exit(1)
		}
	}

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario %s ya existe (rol %s); nada que hacer.\n", email, existing.Role)
		return
	}

	hash, err := auth.HashPassword(seed.AdminPassword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash: %v\n", err)
		os.Exit(1)
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(seed.AdminName),
		Email:        email,
		Address:      strings.TrimSpace(seed.AdminAddress),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Administrador %s creado (id %s)\n", email, admin.ID)
}
