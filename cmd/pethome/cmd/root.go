// cmd/pethome/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"pethome/cmd/pethome/cmd/auth"
	"pethome/cmd/pethome/cmd/listing"
	"pethome/cmd/pethome/cmd/profile"
	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
	"pethome/internal/app/client/config"
	"pethome/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
	app     *client.App
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "pethome",
	Short: "PetHome - доска профилей питомцев",
	Long: `PetHome — локальное приложение доски объявлений о питомцах.
	
Зарегистрируйтесь, войдите, привяжите к аккаунту профиль питомца
(сертификат и фотографии) и просматривайте профили всех участников.
Все данные хранятся только на этом компьютере.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if debug {
		cfg.Env = config.EnvLocal
	}

	// Настраиваем логгер
	log = logger.New(cfg.Env)

	// Создаем приложение
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Кладем приложение в контекст выполняемой команды
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")

	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Команды профиля питомца
	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.SaveCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)

	// Общий список профилей
	rootCmd.AddCommand(listing.ListingCmd)
}
