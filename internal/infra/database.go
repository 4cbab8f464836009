package infra

import (
	"fmt"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase abre a conexão GORM sobre pgx e roda AutoMigrate para criar e
// atualizar todas as tabelas do domínio.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations aplica o schema completo. Também usada pelos testes de
// integração contra um banco descartável.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Cliente{},
		&model.ClienteConfiguracao{},
		&model.Produto{},
		&model.Lote{},
		&model.LoteStatusHistorico{},
		&model.EstoqueLote{},
		&model.VendaDiaria{},
		&model.Notificacao{},
	)
}
