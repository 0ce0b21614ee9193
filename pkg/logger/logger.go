// Package logger 提供基于zap的结构化日志
//
// 设计说明：
// 1. 使用uber-go/zap（高性能结构化日志库）
// 2. 支持console（开发环境）和json（生产环境）两种输出格式
// 3. 全局Logger通过Init初始化，业务代码使用logger.L()获取
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 全局Logger实例
// 说明：默认是zap.NewNop()，保证未初始化时调用不会panic（如单元测试）
var global = zap.NewNop()

// Options 日志配置项
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	EnableCaller bool   // 是否记录调用位置
}

// Init 初始化全局Logger
func Init(opts Options) error {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableCaller = !opts.EnableCaller

	if opts.Format == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("构建Logger失败: %w", err)
	}

	global = l
	return nil
}

// L 获取全局Logger
func L() *zap.Logger {
	return global
}

// Sync 刷新缓冲的日志（程序退出前调用）
func Sync() {
	_ = global.Sync()
}
