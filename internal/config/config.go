package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Export  ExportConfig  `mapstructure:"export"`
}

type AppConfig struct {
	Mode    string `mapstructure:"mode"` // debug | release
	LogPath string `mapstructure:"log_path"`
}

type StorageConfig struct {
	// Backend: memory | file | bolt | redis
	Backend  string `mapstructure:"backend"`
	DataDir  string `mapstructure:"data_dir"`
	BoltPath string `mapstructure:"bolt_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type SeedConfig struct {
	// OnStart 为 true 时每个命令启动前补种缺失的初始数据
	OnStart bool `mapstructure:"on_start"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("TEACH_PLATFORM")
	viper.AutomaticEnv()

	viper.SetDefault("app.mode", "debug")
	viper.SetDefault("app.log_path", "logs/app.log")
	viper.SetDefault("storage.backend", "bolt")
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("storage.bolt_path", "data/platform.db")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.prefix", "teaching_platform")
	viper.SetDefault("seed.on_start", true)
	viper.SetDefault("export.dir", "exports")

	viper.BindEnv("app.mode", "APP_MODE")
	viper.BindEnv("storage.backend", "STORAGE_BACKEND")
	viper.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")
	viper.BindEnv("storage.bolt_path", "STORAGE_BOLT_PATH")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		// 配置文件缺失时用默认值运行
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.Backend == "file" || cfg.Storage.Backend == "bolt" {
		if _, err := os.Stat(cfg.Storage.DataDir); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.DataDir, 0755)
		}
	}

	return &cfg, nil
}
