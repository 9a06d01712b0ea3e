package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bugsnag/panicwrap"
	"go.uber.org/zap"

	"github.com/washtime/api/internal/configure"
	"github.com/washtime/api/internal/global"
	"github.com/washtime/api/internal/gql"
	"github.com/washtime/api/internal/health"
	"github.com/washtime/api/internal/monitoring"
	"github.com/washtime/api/internal/svc/auth"
	"github.com/washtime/api/internal/svc/car"
	"github.com/washtime/api/internal/svc/prometheus"
	"github.com/washtime/api/internal/svc/rpc"
	"github.com/washtime/api/internal/svc/timetable"
	"github.com/washtime/api/internal/svc/user"
)

var (
	Version = "development"
	Unix    = ""
	Time    = "unknown"
	User    = "unknown"
)

func init() {
	debug.SetGCPercent(2000)
	if i, err := strconv.Atoi(Unix); err == nil {
		Time = time.Unix(int64(i), 0).Format(time.RFC3339)
	}
}

func main() {
	config := configure.New()

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		zap.S().Errorw("panic detected",
			"panic", s,
		)
	})
	if err != nil {
		zap.S().Errorw("failed to setup panic handler",
			"error", err,
		)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		zap.S().Info("WashTime API Gateway")
		zap.S().Infof("Version: %s", Version)
		zap.S().Infof("build.Time: %s", Time)
		zap.S().Infof("build.User: %s", User)
	}

	zap.S().Debugf("MaxProcs: %d", runtime.GOMAXPROCS(0))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	gCtx, cancel := global.WithCancel(global.New(context.Background(), config))

	{
		gCtx.Inst().Prometheus = prometheus.New(prometheus.Options{
			Labels: config.Monitoring.Labels.ToPrometheus(),
		})
	}

	{
		gCtx.Inst().RPC, err = rpc.New(gCtx, rpc.Options{
			Servers:  config.Nats.Servers,
			Name:     config.Nats.Name,
			Observer: gCtx.Inst().Prometheus,
		})
		if err != nil {
			zap.S().Fatalw("failed to setup nats rpc handler",
				"error", err,
			)
		}
	}

	{
		gCtx.Inst().User = user.New(gCtx.Inst().RPC)
		gCtx.Inst().Auth = auth.New(gCtx.Inst().RPC)
		gCtx.Inst().Car = car.New(gCtx.Inst().RPC)
		gCtx.Inst().TimeTable = timetable.New(gCtx.Inst().RPC)
	}

	wg := sync.WaitGroup{}

	if gCtx.Config().Health.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-health.New(gCtx)
		}()
	}
	if gCtx.Config().Monitoring.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-monitoring.New(gCtx)
		}()
	}

	done := make(chan struct{})
	go func() {
		<-sig
		cancel()
		go func() {
			select {
			case <-time.After(time.Minute):
			case <-sig:
			}
			zap.S().Fatal("force shutdown")
		}()

		zap.S().Info("shutting down")

		wg.Wait()

		close(done)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gql.New(gCtx); err != nil {
			zap.S().Fatalw("gql failed",
				"error", err,
			)
		}
	}()

	zap.S().Info("running")

	<-done

	zap.S().Info("shutdown")
	os.Exit(0)
}
