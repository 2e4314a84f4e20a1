package cfg

import "time"

// ConfigValues defines all available configuration options
type ConfigValues struct {
	Log struct {
		Level           string `mapstructure:"level" yaml:"level"`
		TimestampFormat string `mapstructure:"timestamp_format" yaml:"timestamp_format"`
		FullTimestamp   bool   `mapstructure:"full_timestamp" yaml:"full_timestamp"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		File   string `mapstructure:"file" yaml:"file"`
		String string `mapstructure:"string" yaml:"string"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Format  string `mapstructure:"format" yaml:"format"`
		NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
		Value   string `mapstructure:"value" yaml:"value"`
		Query   string `mapstructure:"query" yaml:"query"`
		File    string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"output" yaml:"output"`

	Stress struct {
		Scenarios    string        `mapstructure:"scenarios" yaml:"scenarios"`
		Workers      int           `mapstructure:"workers" yaml:"workers"`
		Readers      int           `mapstructure:"readers" yaml:"readers"`
		Operations   int           `mapstructure:"operations" yaml:"operations"`
		Batch        int           `mapstructure:"batch" yaml:"batch"`
		LockWaitWarn time.Duration `mapstructure:"lock_wait_warn" yaml:"lock_wait_warn"`
	} `mapstructure:"stress" yaml:"stress"`
}
