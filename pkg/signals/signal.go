package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	once sync.Once
	ctx  context.Context
)

// SetupSignalHandler 收到 SIGINT/SIGTERM 时取消返回的 context，第二次收到信号直接退出。
// 多次调用返回同一个 context。
func SetupSignalHandler() context.Context {
	once.Do(func() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		c := make(chan os.Signal, 2)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			cancel()
			<-c
			os.Exit(1)
		}()
	})
	return ctx
}
