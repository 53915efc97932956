package infra

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marcusnog/playground-backend/internal/config"
	"github.com/marcusnog/playground-backend/internal/model"
)

func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLevel := logger.Warn
	if cfg.IsDevelopment() {
		gormLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(gormLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info().Msg("database connection established")
	return db, nil
}

// Migrate keeps the schema in sync with the models. Order matters: referenced
// tables before the tables that point at them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Brinquedo{},
		&model.Caixa{},
		&model.CaixaBrinquedo{},
		&model.MovimentoCaixa{},
		&model.Cliente{},
		&model.FormaPagamento{},
		&model.Lancamento{},
		&model.Estacionamento{},
		&model.LancamentoEstacionamento{},
		&model.Parametros{},
	)
}
