package render

import (
	"bytes"
	"fmt"
	"html/template"

	"pethome/internal/domain/account"
	"pethome/internal/domain/profile"
)

// PlaceholderImage подставляется в карточку, когда у профиля нет фото
const PlaceholderImage = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIxMjAiIGhlaWdodD0iMTIwIj48cmVjdCB3aWR0aD0iMTIwIiBoZWlnaHQ9IjEyMCIgZmlsbD0iI2UwZTBlMCIvPjx0ZXh0IHg9IjYwIiB5PSI2NiIgZm9udC1zaXplPSIxNCIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZmlsbD0iIzc1NzU3NSI+bm8gcGhvdG88L3RleHQ+PC9zdmc+"

// FormatFund форматирует фонд: два знака после запятой и валюта
func FormatFund(fund float64, currency string) string {
	return fmt.Sprintf("%.2f %s", fund, currency)
}

var profileTemplate = template.Must(template.New("profile").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>{{.Name}}</title></head>
<body>
<article class="profile">
  <h1>{{.Name}}</h1>
  <p>{{.Description}}</p>
{{- if .Certificate}}
  <p><a href="{{.Certificate.Href}}" download="{{.Certificate.Filename}}">Сертификат: {{.Certificate.Filename}}</a></p>
{{- end}}
{{- range .Photos}}
  <img src="{{.Src}}" alt="{{.Filename}}">
{{- end}}
</article>
</body>
</html>
`))

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Питомцы</title></head>
<body>
{{- if .Cards}}
<ul class="listing">
{{- range .Cards}}
  <li class="card">
    <img src="{{.Photo}}" alt="{{.Name}}">
    <h2>{{.Name}}</h2>
    <p>{{.Description}}</p>
    <p class="fund">{{.Fund}}</p>
  </li>
{{- end}}
</ul>
{{- else}}
<p class="empty">Пока нет ни одного профиля питомца</p>
{{- end}}
</body>
</html>
`))

type profileFile struct {
	Filename string
	Href     template.URL
	Src      template.URL
}

type profileView struct {
	Name        string
	Description string
	Certificate *profileFile
	Photos      []profileFile
}

type listingCard struct {
	Photo       template.URL
	Name        string
	Description string
	Fund        string
}

type listingView struct {
	Cards []listingCard
}

// HTML рендерит страницы профиля и общего списка
type HTML struct {
	currency string
}

func NewHTML(currency string) *HTML {
	return &HTML{currency: currency}
}

// ProfilePage рендерит один профиль: имя, описание, ссылку на скачивание
// сертификата и все фото.
func (h *HTML) ProfilePage(p *profile.Profile) ([]byte, error) {
	view := profileView{
		Name:        p.Name,
		Description: p.Description,
	}

	if p.Certificate != nil {
		view.Certificate = &profileFile{
			Filename: p.Certificate.Filename,
			Href:     template.URL(p.Certificate.Data),
		}
	}

	for _, photo := range p.Photos {
		view.Photos = append(view.Photos, profileFile{
			Filename: photo.Filename,
			Src:      template.URL(photo.Data),
		})
	}

	var buf bytes.Buffer
	if err := profileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("ошибка рендеринга профиля: %w", err)
	}

	return buf.Bytes(), nil
}

// ListingPage собирает карточки всех аккаунтов с профилем. Если таких
// аккаунтов нет, вместо пустого списка рендерится заглушка.
func (h *HTML) ListingPage(accounts []account.Account) ([]byte, error) {
	var view listingView

	for _, acc := range accounts {
		if !acc.HasProfile() {
			continue
		}

		photo := template.URL(PlaceholderImage)
		if first, ok := acc.Profile.FirstPhoto(); ok {
			photo = template.URL(first.Data)
		}

		view.Cards = append(view.Cards, listingCard{
			Photo:       photo,
			Name:        acc.Profile.Name,
			Description: acc.Profile.Description,
			Fund:        FormatFund(acc.Fund, h.currency),
		})
	}

	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("ошибка рендеринга списка: %w", err)
	}

	return buf.Bytes(), nil
}
