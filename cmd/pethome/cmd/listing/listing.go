// cmd/pethome/cmd/listing/listing.go
package listing

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
)

var exportHTML bool

// ListingCmd показывает профили всех аккаунтов
var ListingCmd = &cobra.Command{
	Use:   "listing",
	Short: "Все профили питомцев",
	Long: `Общий список: карточка на каждый аккаунт с профилем питомца.
	
Просмотр списка не требует входа.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		accounts, err := app.Accounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка загрузки аккаунтов: %w", err)
		}

		app.Terminal(os.Stdout).Listing(accounts)

		if exportHTML {
			path, err := app.ExportListing(cmd.Context())
			if err != nil {
				return fmt.Errorf("ошибка экспорта: %w", err)
			}
			fmt.Printf("\nСтраница списка: %s\n", path)
		}

		return nil
	},
}

func init() {
	ListingCmd.Flags().BoolVar(&exportHTML, "export", false, "выгрузить страницу списка в HTML")
}
