package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	config *viper.Viper
	once   sync.Once
)

func Init() {
	once.Do(func() {
		initialize()
	})
}

func initialize() {
	config = viper.New()
	config.SetConfigName("conf")
	config.AddConfigPath("./conf/")
	config.AddConfigPath("./")
	config.SetConfigType("yml")
	config.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	config.SetEnvKeyReplacer(replacer)
	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
	})

	setDefaults()
	if err := config.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Println("config file not found use default config")
		} else {
			fmt.Println("config file error")
		}
	}
}

func setDefaults() {
	config.SetDefault("log", map[string]interface{}{
		"level":  "info",
		"output": "stderr",
	})
	config.SetDefault("stats", map[string]interface{}{
		"topk":        64,
		"sketch_hint": 1 << 16,
		"sample_rate": 1.0,
	})
}

func Get(key string) interface{} {
	return config.Get(key)
}

func GetString(key string) string {
	return config.GetString(key)
}

func GetInt(key string) int {
	return config.GetInt(key)
}

func GetFloat64(key string) float64 {
	return config.GetFloat64(key)
}
