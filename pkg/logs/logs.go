package logs

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 对logx的简单包装, 统一调用深度, 业务代码只依赖本包

func Infof(format string, v ...any) {
	logx.WithCallerSkip(1).Infof(format, v...)
}

func Warnf(format string, v ...any) {
	logx.WithCallerSkip(1).Slowf(format, v...)
}

func Errorf(format string, v ...any) {
	logx.WithCallerSkip(1).Errorf(format, v...)
}

func CtxInfof(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Infof(format, v...)
}

func CtxWarnf(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Slowf(format, v...)
}

func CtxErrorf(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Errorf(format, v...)
}
