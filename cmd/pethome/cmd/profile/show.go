// cmd/pethome/cmd/profile/show.go
package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
	"pethome/internal/domain/session"
)

var exportHTML bool

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать профиль питомца",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		acc, err := app.CurrentAccount(cmd.Context())
		if errors.Is(err, session.ErrNoSession) {
			return fmt.Errorf("нет активной сессии, войдите: pethome auth login")
		}
		if err != nil {
			return err
		}

		if !acc.HasProfile() {
			fmt.Println("Профиль еще не создан: pethome profile save")
			return nil
		}

		app.Terminal(os.Stdout).Profile(acc.Profile)

		if exportHTML {
			path, err := app.ExportProfile(cmd.Context())
			if err != nil {
				return fmt.Errorf("ошибка экспорта: %w", err)
			}
			fmt.Printf("\nСтраница профиля: %s\n", path)
		}

		return nil
	},
}

func init() {
	ShowCmd.Flags().BoolVar(&exportHTML, "export", false, "выгрузить страницу профиля в HTML")
}
