//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire是Google开发的编译期依赖注入工具,生成代码而非运行时反射
// 2. 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 3. main.go当前使用手动装配,本文件提供等价的Wire装配方式
//
// 核心概念：
// - Provider: 提供依赖的构造函数(如NewBookRepository)
// - Injector: 声明最终要构造的目标类型(*gin.Engine)
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewMemberRepository, // 读者仓储
	mysql.NewLoanRepository,   // 借阅台账仓储
	mysql.NewStaffRepository,  // 管理员仓储
	mysql.NewTxManager,        // 事务管理器
	// 应用层依赖各自包内定义的TxManager接口,由*mysql.TxManager实现
	wire.Bind(new(apploan.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appbook.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appmember.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,   // 图书领域服务
	member.NewService, // 读者领域服务
	staff.NewService,  // 管理员领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewAddBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewListBooksUseCase,
	appmember.NewRegisterMemberUseCase,
	appmember.NewUpdateMemberUseCase,
	appmember.NewDeleteMemberUseCase,
	appmember.NewListMembersUseCase,
	apploan.NewCheckoutUseCase,
	apploan.NewReturnLoanUseCase,
	apploan.NewListLoansUseCase,
	appstaff.NewRegisterUseCase,
	appstaff.NewLoginUseCase,
	appstaff.NewLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器(需要从config提取参数)
	provideSessionStore,          // Session存储
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewMemberHandler,
	handler.NewLoanHandler,
	handler.NewStaffHandler,
)

// provideJWTManager 从配置创建JWT管理器
// config.Config包含多个字段,Wire无法自动提取,需要手写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	loanHandler *handler.LoanHandler,
	staffHandler *handler.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Metrics())
	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	}

	// registerRoutes(main.go)包含/ping、/metrics、/swagger与全部业务路由
	registerRoutes(r, bookHandler, memberHandler, loanHandler, staffHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// Wire会在编译期分析依赖链并生成初始化代码:
// *gin.Engine → Handler → UseCase → Service → Repository → *gorm.DB → *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
