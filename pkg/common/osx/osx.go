package osx

import (
	"github.com/joho/godotenv"
	"github.com/piercep/thread-safe-collections/pkg/common"
	"github.com/piercep/thread-safe-collections/pkg/common/pathx"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// EnvVarsLoad reads '.env' files without overriding variables already set
func EnvVarsLoad() {
	for _, file := range EnvFiles() {
		if !pathx.Exists(file) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			log.Fatalf("cannot load env file '%s': %s", file, err)
		}
	}
}

func EnvFiles() []string {
	return []string{".env", common.ConfigDir + "/.env"}
}

func EnvVarsMap() map[string]string {
	result := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			result[e[:i]] = e[i+1:]
		}
	}
	return result
}
