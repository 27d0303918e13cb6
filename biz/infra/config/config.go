package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
)

var config *Config

type Mongo struct {
	URL string `json:",optional"`
	DB  string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn  string   `json:",default=0.0.0.0:8000"`
	MetricsOn string   `json:",default=0.0.0.0:9091"`
	State     string   `json:",default=test"`
	Sensitive []string `json:",optional"`
	Mongo     Mongo    `json:",optional"`
}

// NewConfig 加载配置
// 优先读取CONFIG_PATH指定的yaml(缺省etc/config.yaml, 文件不存在则使用默认值),
// 之后用环境变量DATABASE_URL/DATABASE_NAME/PORT覆盖, 环境变量优先
func NewConfig() (*Config, error) {
	c := &Config{
		ServiceConf: service.ServiceConf{Name: "lexaid-core-api"},
		ListenOn:    "0.0.0.0:8000",
		MetricsOn:   "0.0.0.0:9091",
		State:       "test",
	}
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err = conf.Load(path, c); err != nil {
			return nil, err
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Mongo.URL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		c.Mongo.DB = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.ListenOn = "0.0.0.0:" + v
	}
	if err := c.SetUp(); err != nil {
		return nil, err
	}
	config = c
	return config, nil
}

func GetConfig() *Config {
	return config
}
