package main

import (
	"context"
	"github.com/piercep/thread-safe-collections/pkg"
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/piercep/thread-safe-collections/pkg/common/osx"
	"os"
	"os/signal"
)

func main() {
	osx.EnvVarsLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := cfg.NewConfig()
	tsc := pkg.NewTSC(config)

	cli := NewCLI(tsc, config)
	cli.ExecContext(ctx)
}
