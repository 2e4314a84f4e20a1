package cfg

import (
	"github.com/piercep/thread-safe-collections/pkg/common/fmtx"
	"github.com/spf13/viper"
	"runtime"
	"time"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.timestamp_format", "2006-01-02 15:04:05")
	v.SetDefault("log.full_timestamp", true)

	v.SetDefault("input.format", fmtx.YML)
	v.SetDefault("input.file", InputStdin)
	v.SetDefault("output.format", fmtx.Text)
	v.SetDefault("output.file", OutputFileDefault)

	v.SetDefault("stress.scenarios", "*")
	v.SetDefault("stress.workers", runtime.NumCPU())
	v.SetDefault("stress.readers", 2)
	v.SetDefault("stress.operations", 10000)
	v.SetDefault("stress.batch", 64)
	v.SetDefault("stress.lock_wait_warn", time.Duration(0))
}
