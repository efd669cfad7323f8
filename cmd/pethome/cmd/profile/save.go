// cmd/pethome/cmd/profile/save.go
package profile

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pethome/cmd/pethome/cmd/types"
	"pethome/internal/app/client"
	"pethome/internal/domain/profile"
	"pethome/internal/domain/session"
)

var (
	petName         string
	description     string
	certificatePath string
	photoPaths      []string
)

var SaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Сохранить профиль питомца",
	Long: `Сохранение профиля питомца текущего аккаунта.
	
Сертификат и фотографии встраиваются в профиль целиком. Порядок
фотографий в профиле совпадает с порядком флагов --photo. Новый профиль
полностью заменяет прежний, включая файлы.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("Сохранение профиля...")
		p, err := app.SaveProfile(cmd.Context(), profile.IngestRequest{
			Name:            petName,
			Description:     description,
			CertificatePath: certificatePath,
			PhotoPaths:      photoPaths,
		})
		if errors.Is(err, session.ErrNoSession) {
			return fmt.Errorf("нет активной сессии, войдите: pethome auth login")
		}
		if err != nil {
			return fmt.Errorf("ошибка сохранения профиля: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Профиль '%s' сохранен (фото: %d)\n", p.Name, len(p.Photos))

		return nil
	},
}

func init() {
	SaveCmd.Flags().StringVarP(&petName, "name", "n", "", "кличка питомца")
	SaveCmd.Flags().StringVar(&description, "desc", "", "описание питомца")
	SaveCmd.Flags().StringVar(&certificatePath, "certificate", "", "путь к файлу сертификата")
	SaveCmd.Flags().StringArrayVar(&photoPaths, "photo", nil, "путь к фотографии (можно несколько раз)")

	_ = SaveCmd.MarkFlagRequired("name")
	_ = SaveCmd.MarkFlagRequired("desc")
}
