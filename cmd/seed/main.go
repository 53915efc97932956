package main

// Seeds the bootstrap data: a protected admin with every capability, the
// standard payment methods, and the global parameter row. Safe to run more
// than once — existing rows are left alone.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/config"
	"github.com/marcusnog/playground-backend/internal/infra"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedAdmin(ctx, db)
	seedFormasPagamento(ctx, db)
	seedParametros(ctx, db)

	log.Info().Msg("seed complete")
}

func seedAdmin(ctx context.Context, db *gorm.DB) {
	usuarios := repository.NewUsuarioRepository(db)
	if _, err := usuarios.FindByApelido(ctx, "admin"); err == nil {
		log.Info().Msg("admin user already present")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}

	admin := &model.Usuario{
		NomeCompleto: "Administrador",
		Apelido:      "admin",
		Senha:        string(hash),
		Protegido:    true,

		Acompanhamento:                true,
		Lancamento:                    true,
		CaixaAbertura:                 true,
		CaixaFechamento:               true,
		CaixaSangria:                  true,
		CaixaSuprimento:               true,
		EstacionamentoCadastro:        true,
		EstacionamentoCaixaAbertura:   true,
		EstacionamentoCaixaFechamento: true,
		EstacionamentoLancamento:      true,
		EstacionamentoAcompanhamento:  true,
		Relatorios:                    true,
		ParametrosEmpresa:             true,
		ParametrosFormasPagamento:     true,
		ParametrosBrinquedos:          true,
		Clientes:                      true,
	}
	if err := usuarios.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("create admin user")
	}
	log.Info().Str("apelido", admin.Apelido).Msg("admin user created")
}

func seedFormasPagamento(ctx context.Context, db *gorm.DB) {
	formas := repository.NewFormaPagamentoRepository(db)
	existing, err := formas.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list payment methods")
	}
	present := make(map[string]bool, len(existing))
	for _, f := range existing {
		present[f.Descricao] = true
	}

	for _, descricao := range []string{"Dinheiro", "PIX", "Débito"} {
		if present[descricao] {
			continue
		}
		forma := &model.FormaPagamento{Descricao: descricao, Status: "ativo"}
		if err := formas.Create(ctx, forma); err != nil {
			log.Fatal().Err(err).Str("descricao", descricao).Msg("create payment method")
		}
		log.Info().Str("descricao", descricao).Msg("payment method created")
	}
}

func seedParametros(ctx context.Context, db *gorm.DB) {
	parametros := repository.NewParametrosRepository(db)
	existing, err := parametros.Find(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("read parameters")
	}
	if existing != nil {
		log.Info().Msg("global parameters already present")
		return
	}
	if err := parametros.Create(ctx, model.DefaultParametros()); err != nil {
		log.Fatal().Err(err).Msg("create global parameters")
	}
	log.Info().Msg("global parameters created")
}
