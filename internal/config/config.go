package config

import (
	"os"

	"circles/internal/common/jwt"
	"circles/internal/pkg/db"
	"circles/internal/pkg/log"
	"circles/internal/pkg/mprometheus"
	"circles/internal/pkg/mtrace"
	"circles/internal/pkg/redis"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Debug      bool               `json:"debug" yaml:"debug"`
	Pprof      bool               `json:"pprof" yaml:"pprof"`
	Addr       string             `json:"addr" yaml:"addr"`
	Seed       bool               `json:"seed" yaml:"seed"`
	DB         db.Config          `json:"db" yaml:"db"`
	Redis      redis.Config       `json:"redis" yaml:"redis"`
	JWT        jwt.Config         `json:"jwt" yaml:"jwt"`
	Log        log.Config         `json:"log" yaml:"log"`
	Trace      mtrace.Config      `json:"trace" yaml:"trace"`
	Prometheus mprometheus.Config `json:"prometheus" yaml:"prometheus"`
}

func ParseConfig(file string) *Config {
	content, err := os.ReadFile(file)
	if err != nil {
		panic(err)
	}
	cfg := &Config{}
	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
