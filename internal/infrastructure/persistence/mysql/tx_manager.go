package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 借书/还书的"改台账+改计数"必须在同一事务内完成,
//    任何一步失败则整体回滚,保证库存不变量不被破坏
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// 说明:
// 1. fn函数内的所有Repository操作都会在同一事务中执行
// 2. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
// 3. 通过context.WithValue传递事务DB
//
// 使用示例(借书):
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    // 1. 锁定读者与图书(固定顺序:先读者后图书,避免死锁)
//	    m, err := memberRepo.LockByID(ctx, memberID)
//	    if err != nil {
//	        return err
//	    }
//	    b, err := bookRepo.LockByID(ctx, bookID)
//	    if err != nil {
//	        return err // 自动回滚
//	    }
//	    // 2. 业务规则检查 + 创建借阅记录 + 调整计数
//	    ...
//	    return nil // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中
		// Repository的getDB方法会从context提取事务DB
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
