package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Nossos pacotes de infraestrutura e utilitários
	"remoteready/config"
	"remoteready/internal/pkg/cache"
	"remoteready/internal/pkg/database"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/middleware"
	"remoteready/internal/pkg/token"
	"remoteready/migrations"

	// Camadas para Injeção de Dependências
	"remoteready/internal/api/blogpost"
	"remoteready/internal/api/company"
	"remoteready/internal/api/health"
	"remoteready/internal/api/router"
	"remoteready/internal/api/user"
	"remoteready/internal/api/userpost"
	"remoteready/internal/repository/blogpostrepo"
	"remoteready/internal/repository/companyrepo"
	"remoteready/internal/repository/userpostrepo"
	"remoteready/internal/repository/userrepo"
	"remoteready/internal/service/blogpostservice"
	"remoteready/internal/service/companyservice"
	"remoteready/internal/service/userpostservice"
	"remoteready/internal/service/userservice"

	_ "remoteready/docs"
)

// @title RemoteReady API
// @version 1.0
// @description API de empresas remotas, blog e trilha de leitura com certificado.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Informe "Bearer {token}"
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço RemoteReady...")
	config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	defer logger.Sync(appLog)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.PoolConfig{MaxOpenConns: cfg.DBMaxOpenConns}, appLog)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.DBAutoMigrate {
		if err := database.RunMigrations(db, migrations.FS, "."); err != nil {
			appLog.Fatal("Falha ao aplicar migrações.", err)
		}
		appLog.Info("Migrações aplicadas.", nil)
	}

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr, appLog)
	defer cacheClient.Close()

	// C. Serviço de Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry, cfg.JWTIssuer)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout)
	companyRepo := companyrepo.NewCompanyRepository(db, cfg.DBTimeout)
	blogPostRepo := blogpostrepo.NewBlogPostRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	userPostRepo := userpostrepo.NewUserPostRepository(db, cfg.DBTimeout)
	appLog.Debug("Repositórios inicializados.", nil)

	userSvc := userservice.NewService(userRepo, tokenSvc, appLog)
	companySvc := companyservice.NewService(companyRepo, appLog)
	blogPostSvc := blogpostservice.NewService(blogPostRepo, appLog)
	userPostSvc := userpostservice.NewService(userPostRepo, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		User:     user.NewHandler(userSvc, appLog),
		Company:  company.NewHandler(companySvc, appLog),
		BlogPost: blogpost.NewHandler(blogPostSvc, appLog),
		UserPost: userpost.NewHandler(userPostSvc, appLog),
		Health:   health.NewHandler(db, cfg.DBTimeout, appLog),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.Options{
		Tokens:      tokenSvc,
		RateCounter: cacheClient,
		RateLimit: middleware.RateLimitPolicy{
			Name:       "api",
			Limit:      cfg.RateLimitMaxRequests,
			Window:     cfg.RateLimitPeriod,
			QueueLimit: cfg.RateLimitQueueLimit,
		},
		SwaggerEnabled: cfg.SwaggerEnabled,
		Logger:         appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor RemoteReady ouvindo na porta", map[string]interface{}{"port": cfg.Port, "swagger": cfg.SwaggerEnabled})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
