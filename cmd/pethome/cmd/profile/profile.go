package profile

import (
	"github.com/spf13/cobra"
)

// ProfileCmd - родительская команда для операций с профилем питомца
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Профиль питомца",
	Long:  `Создание и просмотр профиля питомца текущего аккаунта.`,
}
