package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fulldump/box"

	"github.com/fulldump/candidatedb/api"
	"github.com/fulldump/candidatedb/configuration"
	"github.com/fulldump/candidatedb/service"
)

var VERSION = "dev"

const shutdownTimeout = 10 * time.Second

// Bootstrap binds the HTTP address right away. start blocks until stop is
// called or SIGTERM/SIGINT is received.
func Bootstrap(c *configuration.Configuration, s service.Servicer, l *slog.Logger) (start, stop func(), err error) {

	b := api.Build(s, VERSION)
	b.WithInterceptors(
		api.AccessLog(l),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic(l),
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen on '%s': %w", c.HttpAddr, err)
	}
	l.Info("listening", "addr", ln.Addr().String())

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	once := &sync.Once{}
	stop = func() {
		once.Do(func() {
			signal.Stop(signalChan)
			close(signalChan)

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err := server.Shutdown(ctx)
			if err != nil {
				l.Error("shutdown", "error", err.Error())
			}
		})
	}

	go func() {
		sig, ok := <-signalChan
		if !ok {
			return
		}
		l.Info("signal received", "signal", sig.String())
		stop()
	}()

	start = func() {
		err := server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("serve", "error", err.Error())
		}
	}

	return start, stop, nil
}
