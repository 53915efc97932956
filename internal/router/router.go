package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/config"
	"github.com/marcusnog/playground-backend/internal/handler"
	"github.com/marcusnog/playground-backend/internal/middleware"
	"github.com/marcusnog/playground-backend/internal/permission"
	"github.com/marcusnog/playground-backend/internal/repository"
	"github.com/marcusnog/playground-backend/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.ExposeInternalErrors(cfg.IsDevelopment())

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)
	lancamentoRepo := repository.NewLancamentoRepository(db)
	estacionamentoRepo := repository.NewEstacionamentoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	brinquedoRepo := repository.NewBrinquedoRepository(db)
	formaPagamentoRepo := repository.NewFormaPagamentoRepository(db)
	parametrosRepo := repository.NewParametrosRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	caixaSvc := service.NewCaixaService(caixaRepo)
	parametrosSvc := service.NewParametrosService(parametrosRepo, rdb)
	lancamentoSvc := service.NewLancamentoService(lancamentoRepo, formaPagamentoRepo, parametrosSvc, cfg)
	estacionamentoSvc := service.NewEstacionamentoService(estacionamentoRepo, caixaRepo, formaPagamentoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	brinquedoSvc := service.NewBrinquedoService(brinquedoRepo)
	formaPagamentoSvc := service.NewFormaPagamentoService(formaPagamentoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuarioHandler(usuarioSvc)
	caixasH := handler.NewCaixaHandler(caixaSvc)
	lancamentosH := handler.NewLancamentoHandler(lancamentoSvc)
	estacionamentosH := handler.NewEstacionamentoHandler(estacionamentoSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)
	brinquedosH := handler.NewBrinquedoHandler(brinquedoSvc)
	formasH := handler.NewFormaPagamentoHandler(formaPagamentoSvc)
	parametrosH := handler.NewParametrosHandler(parametrosSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. Reads require only authentication; writes are gated by
	// the capability named next to each route. BlockedGuard comes after JWT so
	// a user blocked mid-session is cut off immediately.
	api := r.Group("/api",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.BlockedGuard(usuarioRepo),
	)
	{
		api.GET("/auth/me", authH.Me)

		caixas := api.Group("/caixas")
		{
			caixas.GET("", caixasH.Listar)
			caixas.GET("/aberto", caixasH.BuscarAberto)
			caixas.GET("/:id", caixasH.Buscar)
			caixas.GET("/:id/movimentos", caixasH.ListarMovimentos)
			caixas.POST("/abertura", middleware.RequirePermission(permission.CaixaAbertura), caixasH.Abrir)
			caixas.POST("/fechamento", middleware.RequirePermission(permission.CaixaFechamento), caixasH.Fechar)
			caixas.POST("/:id/sangria", middleware.RequirePermission(permission.CaixaSangria), caixasH.Sangria)
			caixas.POST("/:id/suprimento", middleware.RequirePermission(permission.CaixaSuprimento), caixasH.Suprimento)
			caixas.POST("", middleware.RequirePermission(permission.ParametrosEmpresa), caixasH.Criar)
			caixas.PUT("/:id", middleware.RequirePermission(permission.ParametrosEmpresa), caixasH.Atualizar)
			caixas.DELETE("/:id", middleware.RequirePermission(permission.ParametrosEmpresa), caixasH.Excluir)
		}

		lancamentos := api.Group("/lancamentos")
		{
			lancamentos.GET("", lancamentosH.Listar)
			lancamentos.GET("/abertos", lancamentosH.ListarAbertos)
			lancamentos.GET("/:id", lancamentosH.Buscar)
			lancamentos.GET("/:id/comprovante", lancamentosH.Comprovante)
			lancamentos.POST("", middleware.RequirePermission(permission.Lancamento), lancamentosH.Criar)
			lancamentos.PUT("/:id", middleware.RequirePermission(permission.Lancamento), lancamentosH.Atualizar)
			lancamentos.POST("/:id/pagar", middleware.RequirePermission(permission.Lancamento), lancamentosH.Pagar)
			lancamentos.POST("/:id/cancelar", middleware.RequirePermission(permission.Lancamento), lancamentosH.Cancelar)
		}

		estacionamentos := api.Group("/estacionamentos")
		{
			estacionamentos.GET("", estacionamentosH.Listar)
			estacionamentos.POST("", middleware.RequirePermission(permission.EstacionamentoCadastro), estacionamentosH.Criar)

			// Parking entries. Declared before /:id so "lancamentos" and
			// "caixa" are not swallowed as ids.
			estacionamentos.GET("/lancamentos", estacionamentosH.ListarLancamentos)
			estacionamentos.GET("/lancamentos/abertos", estacionamentosH.ListarLancamentosAbertos)
			estacionamentos.GET("/lancamentos/:id", estacionamentosH.BuscarLancamento)
			estacionamentos.POST("/lancamentos", middleware.RequirePermission(permission.EstacionamentoLancamento), estacionamentosH.CriarLancamento)
			estacionamentos.POST("/lancamentos/:id/pagar", middleware.RequirePermission(permission.EstacionamentoLancamento), estacionamentosH.PagarLancamento)
			estacionamentos.POST("/lancamentos/:id/cancelar", middleware.RequirePermission(permission.EstacionamentoLancamento), estacionamentosH.CancelarLancamento)

			// Parking register helpers share the caixa lifecycle under their
			// own capability flags.
			estacionamentos.GET("/caixa/abertura", middleware.RequirePermission(permission.EstacionamentoCaixaAbertura), caixasH.BuscarAberto)
			estacionamentos.POST("/caixa/abertura", middleware.RequirePermission(permission.EstacionamentoCaixaAbertura), caixasH.Abrir)
			estacionamentos.POST("/caixa/fechamento", middleware.RequirePermission(permission.EstacionamentoCaixaFechamento), caixasH.Fechar)

			estacionamentos.GET("/:id", estacionamentosH.Buscar)
			estacionamentos.PUT("/:id", middleware.RequirePermission(permission.EstacionamentoCadastro), estacionamentosH.Atualizar)
			estacionamentos.DELETE("/:id", middleware.RequirePermission(permission.EstacionamentoCadastro), estacionamentosH.Excluir)
		}

		clientes := api.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/pesquisa", clientesH.Pesquisar)
			clientes.GET("/search/:query", clientesH.PesquisarPorParam)
			clientes.GET("/:id", clientesH.Buscar)
			clientes.POST("", middleware.RequirePermission(permission.Clientes), clientesH.Criar)
			clientes.PUT("/:id", middleware.RequirePermission(permission.Clientes), clientesH.Atualizar)
			clientes.DELETE("/:id", middleware.RequirePermission(permission.Clientes), clientesH.Excluir)
		}

		brinquedos := api.Group("/brinquedos")
		{
			brinquedos.GET("", brinquedosH.Listar)
			brinquedos.GET("/:id", brinquedosH.Buscar)
			brinquedos.POST("", middleware.RequirePermission(permission.ParametrosBrinquedos), brinquedosH.Criar)
			brinquedos.PUT("/:id", middleware.RequirePermission(permission.ParametrosBrinquedos), brinquedosH.Atualizar)
			brinquedos.DELETE("/:id", middleware.RequirePermission(permission.ParametrosBrinquedos), brinquedosH.Excluir)
		}

		formas := api.Group("/formas-pagamento")
		{
			formas.GET("", formasH.Listar)
			formas.GET("/:id", formasH.Buscar)
			formas.POST("", middleware.RequirePermission(permission.ParametrosFormasPagamento), formasH.Criar)
			formas.PUT("/:id", middleware.RequirePermission(permission.ParametrosFormasPagamento), formasH.Atualizar)
			formas.DELETE("/:id", middleware.RequirePermission(permission.ParametrosFormasPagamento), formasH.Excluir)
		}

		parametros := api.Group("/parametros")
		{
			parametros.GET("", parametrosH.Buscar)
			parametros.PUT("", middleware.RequirePermission(permission.ParametrosEmpresa), parametrosH.Atualizar)
		}

		usuarios := api.Group("/usuarios")
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Buscar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Excluir)
		}
	}

	// Swagger UI — only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
