package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pethome/internal/domain/account"
	"pethome/internal/domain/profile"
)

// Terminal выводит профили в консоль теми же правилами, что и HTML:
// карточка на каждый аккаунт с профилем, заглушка при пустом списке.
type Terminal struct {
	out      io.Writer
	currency string
}

func NewTerminal(out io.Writer, currency string) *Terminal {
	return &Terminal{
		out:      out,
		currency: currency,
	}
}

func (t *Terminal) Listing(accounts []account.Account) {
	title := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)
	fund := color.New(color.FgGreen)

	shown := 0
	for _, acc := range accounts {
		if !acc.HasProfile() {
			continue
		}

		shown++
		title.Fprintln(t.out, acc.Profile.Name)
		fmt.Fprintln(t.out, acc.Profile.Description)
		fund.Fprintln(t.out, FormatFund(acc.Fund, t.currency))

		if first, ok := acc.Profile.FirstPhoto(); ok {
			faint.Fprintf(t.out, "Фото: %s (всего %d)\n", first.Filename, len(acc.Profile.Photos))
		} else {
			faint.Fprintln(t.out, "Фото: нет")
		}
		fmt.Fprintln(t.out)
	}

	if shown == 0 {
		faint.Fprintln(t.out, "Пока нет ни одного профиля питомца")
	}
}

func (t *Terminal) Profile(p *profile.Profile) {
	title := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	title.Fprintln(t.out, p.Name)
	fmt.Fprintln(t.out, p.Description)

	if p.Certificate != nil {
		faint.Fprintf(t.out, "Сертификат: %s\n", p.Certificate.Filename)
	}
	for _, photo := range p.Photos {
		faint.Fprintf(t.out, "Фото: %s\n", photo.Filename)
	}
}
