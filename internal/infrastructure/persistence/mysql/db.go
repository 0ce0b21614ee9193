package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.L().Info("数据库连接成功",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 说明：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&MemberModel{},
		&LoanModel{},
		&StaffModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag;
//    domain/book/entity.go是领域实体,不依赖GORM
// 2. ISBN有唯一索引,防止重复
// 3. TotalQuantity/AvailableQuantity的关系由借还事务维护,
//    AdjustAvailable的守卫UPDATE是数据库层的最后防线
type BookModel struct {
	ID                uint           `gorm:"primaryKey"`
	ISBN              string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title             string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author            string         `gorm:"index:idx_search;size:100;not null;comment:作者"`
	TotalQuantity     int            `gorm:"not null;comment:馆藏副本总数"`
	AvailableQuantity int            `gorm:"not null;comment:可借副本数"`
	CreatedAt         time.Time      `gorm:"comment:创建时间"`
	UpdatedAt         time.Time      `gorm:"comment:更新时间"`
	DeletedAt         gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// MemberModel GORM读者模型
// 设计说明:
// 1. 证件号与邮箱均有唯一索引
// 2. ActiveLoans是冗余计数,由借还事务维护,
//    AdjustActiveLoans的守卫UPDATE保证0<=active_loans<=3
type MemberModel struct {
	ID                     uint           `gorm:"primaryKey"`
	Name                   string         `gorm:"size:100;not null;comment:姓名"`
	IdentificationDocument string         `gorm:"uniqueIndex;size:50;not null;comment:证件号"`
	Email                  string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	ActiveLoans            int            `gorm:"not null;default:0;comment:当前在借数量"`
	CreatedAt              time.Time      `gorm:"comment:创建时间"`
	UpdatedAt              time.Time      `gorm:"comment:更新时间"`
	DeletedAt              gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// LoanModel GORM借阅记录模型
// 设计说明:
// 1. 借阅台账不做软删除:RETURNED是终态,记录永久保留
// 2. Status使用字符串存储(ACTIVE/RETURNED),与前端契约一致
// 3. (member_id, book_id, status)联合索引支撑重复借阅检查
type LoanModel struct {
	ID         uint       `gorm:"primaryKey"`
	MemberID   uint       `gorm:"index:idx_member_book_status;not null;comment:读者ID"`
	BookID     uint       `gorm:"index:idx_member_book_status;index;not null;comment:图书ID"`
	LoanDate   time.Time  `gorm:"not null;comment:借出日期"`
	ReturnDate *time.Time `gorm:"comment:归还日期(未归还为NULL)"`
	Status     string     `gorm:"index:idx_member_book_status;size:10;not null;comment:状态(ACTIVE/RETURNED)"`
	CreatedAt  time.Time  `gorm:"comment:创建时间"`
	UpdatedAt  time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loans"
}

// StaffModel GORM管理员账号模型
type StaffModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Name      string         `gorm:"size:50;not null;comment:姓名"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (StaffModel) TableName() string {
	return "staff"
}
