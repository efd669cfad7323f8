// cmd/pethome/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в аккаунт",
	Long: `Вход в существующий аккаунт PetHome.
	
Сессия сохраняется локально до явного выхода: pethome auth logout`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход ===")
		fmt.Println()

		// Запрашиваем email
		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Аутентификация...")
		acc, err := app.Login(cmd.Context(), email, string(secret))
		if err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Вход выполнен: %s\n", acc.Identifier)

		return nil
	},
}
