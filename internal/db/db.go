package db

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/donbarbero/booking-api/internal/config"
	"github.com/donbarbero/booking-api/internal/infra/repository"
	"github.com/donbarbero/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.BarberSettings{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// dois clientes disputando o mesmo slot: um grava, o outro leva
	// violação de unicidade em vez de double booking silencioso
	db.Exec(fmt.Sprintf(`
        CREATE UNIQUE INDEX IF NOT EXISTS %s
        ON appointments (service_id, start_at)
        WHERE status <> 'canceled'
    `, repository.SlotIndexName))

	seedSettings(db)
	seedAdmin(db, cfg)

	return db
}

// seedSettings garante a linha única de expediente: 09:00–19:00, ter–sáb.
func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.BarberSettings{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&models.BarberSettings{
		StartHour:   "09:00",
		EndHour:     "19:00",
		WorkingDays: "2,3,4,5,6",
	})
}

func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	db.Create(&models.User{
		Name:         "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	})
}
