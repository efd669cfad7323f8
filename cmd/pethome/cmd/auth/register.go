// cmd/pethome/cmd/auth/register.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
	"pethome/internal/domain/account"
	"pethome/internal/render"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать новый аккаунт",
	Long: `Регистрация нового аккаунта PetHome.
	
После регистрации аккаунт сразу становится текущим, и вы можете
привязать к нему профиль питомца: pethome profile save`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Получаем приложение из контекста
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Регистрация нового аккаунта ===")
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

		fmt.Print("Повторите пароль: ")
		secretConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Регистрация...")
		acc, err := app.Register(cmd.Context(), account.RegisterRequest{
			Identifier:    email,
			Secret:        string(secret),
			SecretConfirm: string(secretConfirm),
		})
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Регистрация успешно завершена!")
		fmt.Printf("Ваш стартовый фонд: %s\n", render.FormatFund(acc.Fund, app.Currency()))
		fmt.Println("Привяжите профиль питомца: pethome profile save")

		return nil
	},
}
