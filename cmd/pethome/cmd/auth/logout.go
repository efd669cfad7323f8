// cmd/pethome/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из аккаунта",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Println("Сессия завершена.")

		return nil
	},
}
