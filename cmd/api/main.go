package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/library/internal/application/book"
	apploan "github.com/xiebiao/library/internal/application/loan"
	appmember "github.com/xiebiao/library/internal/application/member"
	appstaff "github.com/xiebiao/library/internal/application/staff"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/domain/staff"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// @title           图书馆借阅管理API
// @version         1.0
// @description     馆藏登记、读者管理与借还台账服务
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 主程序入口
// 说明：手动依赖注入(cmd/api/wire.go提供Wire版本的等价装配)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		EnableCaller: cfg.Server.Mode == "debug",
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	logger.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
	)

	// 3. 初始化Prometheus指标
	metrics.InitMetrics()

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.L().Fatal("初始化数据库失败", zap.Error(err))
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.L().Fatal("初始化Redis失败", zap.Error(err))
	}

	// 6. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	memberRepo := mysql.NewMemberRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	staffRepo := mysql.NewStaffRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	bookService := book.NewService(bookRepo)
	memberService := member.NewService(memberRepo)
	staffService := staff.NewService(staffRepo)

	// 应用层
	addBookUseCase := appbook.NewAddBookUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookRepo, txManager)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo, txManager)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)

	registerMemberUseCase := appmember.NewRegisterMemberUseCase(memberService)
	updateMemberUseCase := appmember.NewUpdateMemberUseCase(memberService)
	deleteMemberUseCase := appmember.NewDeleteMemberUseCase(memberRepo, txManager)
	listMembersUseCase := appmember.NewListMembersUseCase(memberService)

	checkoutUseCase := apploan.NewCheckoutUseCase(loanRepo, memberRepo, bookRepo, txManager)
	returnLoanUseCase := apploan.NewReturnLoanUseCase(loanRepo, memberRepo, bookRepo, txManager)
	listLoansUseCase := apploan.NewListLoansUseCase(loanRepo, memberRepo)

	registerStaffUseCase := appstaff.NewRegisterUseCase(staffService)
	loginUseCase := appstaff.NewLoginUseCase(staffService, jwtManager, sessionStore)
	logoutUseCase := appstaff.NewLogoutUseCase(sessionStore)

	// 接口层
	bookHandler := handler.NewBookHandler(addBookUseCase, updateBookUseCase, deleteBookUseCase, listBooksUseCase)
	memberHandler := handler.NewMemberHandler(registerMemberUseCase, updateMemberUseCase, deleteMemberUseCase, listMembersUseCase)
	loanHandler := handler.NewLoanHandler(checkoutUseCase, returnLoanUseCase, listLoansUseCase)
	staffHandler := handler.NewStaffHandler(registerStaffUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Metrics())
	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	}

	// 8. 注册路由
	registerRoutes(r, bookHandler, memberHandler, loanHandler, staffHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.L().Info("服务启动",
		zap.String("addr", addr),
		zap.String("health", "GET /ping"),
		zap.String("metrics", "GET /metrics"),
		zap.String("swagger", "GET /swagger/index.html"),
	)

	if err := r.Run(addr); err != nil {
		logger.L().Fatal("启动服务失败", zap.Error(err))
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	loanHandler *handler.LoanHandler,
	staffHandler *handler.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus抓取端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档(生产环境建议关闭或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 管理员模块
		staffGroup := v1.Group("/staff")
		{
			staffGroup.POST("/register", staffHandler.Register)
			staffGroup.POST("/login", staffHandler.Login)
			staffGroup.POST("/logout", authMiddleware.RequireAuth(), staffHandler.Logout)
		}

		// 图书模块(查询公开,变更需要登录)
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.AddBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		// 读者模块(查询公开,变更需要登录)
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.POST("", authMiddleware.RequireAuth(), memberHandler.RegisterMember)
			members.PUT("/:id", authMiddleware.RequireAuth(), memberHandler.UpdateMember)
			members.DELETE("/:id", authMiddleware.RequireAuth(), memberHandler.DeleteMember)
		}

		// 借阅模块(查询公开,借还需要登录)
		loans := v1.Group("/loans")
		{
			loans.GET("", loanHandler.ListLoans)
			loans.GET("/member/:id/active", loanHandler.ListActiveByMember)
			loans.POST("", authMiddleware.RequireAuth(), loanHandler.Checkout)
			loans.PUT("/:id/return", authMiddleware.RequireAuth(), loanHandler.Return)
		}
	}
}
