package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv       = EnvLocal
	defaultLogLevel  = "info"
	defaultConfigDir = ".pethome"
	defaultDataFile  = "pethome.db"
	defaultExportDir = "site"
	defaultCurrency  = "€"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	ConfigDir string `mapstructure:"config_dir"`
	DataPath  string `mapstructure:"data_path"`
	ExportDir string `mapstructure:"export_dir"`
	Currency  string `mapstructure:"currency"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("CURRENCY", defaultCurrency)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	exportDir := viper.GetString("EXPORT_DIR")
	if exportDir == "" {
		exportDir = filepath.Join(configDir, defaultExportDir)
	}

	config := &Config{
		Env:       viper.GetString("APP_ENV"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		ConfigDir: configDir,
		DataPath:  dataPath,
		ExportDir: exportDir,
		Currency:  viper.GetString("CURRENCY"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path не может быть пустым")
	}
	if c.Currency == "" {
		return fmt.Errorf("currency не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
