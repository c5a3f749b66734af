// Package config 校验运行的YAML配置
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/wgdzlh/geoapi"

	"gopkg.in/yaml.v3"
)

const (
	FACTORY_SIMPLE = "simple"
	FACTORY_PROJ   = "proj"
)

// Config 配置文件结构，命令行参数优先
type Config struct {
	Factory  string   `yaml:"factory"`
	Codes    []string `yaml:"codes,omitempty"`
	Strict   bool     `yaml:"strict,omitempty"`
	Format   string   `yaml:"format"`
	Out      string   `yaml:"out,omitempty"`
	LogLevel string   `yaml:"log_level"`
	LogJSON  bool     `yaml:"log_json,omitempty"`
}

func Default() *Config {
	return &Config{
		Factory:  FACTORY_SIMPLE,
		Format:   "yaml",
		LogLevel: "info",
	}
}

// 读取配置，未填写的项取默认值
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	cfg = Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		err = fmt.Errorf("config %s: %v: %w", path, err, geoapi.ErrInvalidArgument)
		cfg = nil
		return
	}
	err = cfg.Validate()
	return
}

func (c *Config) Validate() error {
	c.Factory = strings.ToLower(c.Factory)
	c.Format = strings.ToLower(c.Format)
	switch c.Factory {
	case FACTORY_SIMPLE, FACTORY_PROJ:
	default:
		return fmt.Errorf("factory %q: %w", c.Factory, geoapi.ErrInvalidArgument)
	}
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("format %q: %w", c.Format, geoapi.ErrInvalidArgument)
	}
	return nil
}
