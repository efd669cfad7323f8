package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethome/internal/domain/account"
	"pethome/internal/domain/profile"
)

func TestFormatFund(t *testing.T) {
	assert.Equal(t, "4.00 €", FormatFund(account.StartFund, "€"))
	assert.Equal(t, "12.50 €", FormatFund(12.5, "€"))
}

func TestHTML_ListingPage_EmptyState(t *testing.T) {
	h := NewHTML("€")

	// Аккаунты без профилей равнозначны пустой коллекции
	page, err := h.ListingPage([]account.Account{{Identifier: "a@x.com", Fund: account.StartFund}})
	require.NoError(t, err)

	assert.Contains(t, string(page), "Пока нет ни одного профиля питомца")
	assert.NotContains(t, string(page), "card")
}

func TestHTML_ListingPage_Cards(t *testing.T) {
	h := NewHTML("€")

	accounts := []account.Account{
		{Identifier: "a@x.com", Fund: account.StartFund, Profile: &profile.Profile{
			Name:        "Барсик",
			Description: "ласковый кот",
			Photos: []profile.FileRecord{
				{Filename: "first.jpg", Data: "data:image/jpeg;base64,Zmlyc3Q="},
				{Filename: "second.jpg", Data: "data:image/jpeg;base64,c2Vjb25k"},
			},
		}},
		{Identifier: "b@x.com", Fund: account.StartFund, Profile: &profile.Profile{
			Name:        "Шарик",
			Description: "пес без фото",
		}},
		{Identifier: "c@x.com", Fund: account.StartFund}, // без профиля - без карточки
	}

	page, err := h.ListingPage(accounts)
	require.NoError(t, err)
	out := string(page)

	assert.NotContains(t, out, "Пока нет ни одного профиля питомца")

	// Карточка: первое фото в порядке выбора, имя, описание, фонд
	assert.Contains(t, out, "data:image/jpeg;base64,Zmlyc3Q=")
	assert.NotContains(t, out, "c2Vjb25k")
	assert.Contains(t, out, "Барсик")
	assert.Contains(t, out, "ласковый кот")
	assert.Contains(t, out, "4.00 €")

	// Профиль без фото получает заглушку
	assert.Contains(t, out, PlaceholderImage)
	assert.Contains(t, out, "Шарик")

	// data-URL не должен срезаться санитайзером шаблонов
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestHTML_ProfilePage(t *testing.T) {
	h := NewHTML("€")

	p := &profile.Profile{
		Name:        "Барсик",
		Description: "ласковый кот",
		Certificate: &profile.FileRecord{Filename: "cert.pdf", Data: "data:application/pdf;base64,Y2VydA=="},
		Photos: []profile.FileRecord{
			{Filename: "a.jpg", Data: "data:image/jpeg;base64,YQ=="},
			{Filename: "b.jpg", Data: "data:image/jpeg;base64,Yg=="},
		},
	}

	page, err := h.ProfilePage(p)
	require.NoError(t, err)
	out := string(page)

	assert.Contains(t, out, "Барсик")
	assert.Contains(t, out, "ласковый кот")
	assert.Contains(t, out, `download="cert.pdf"`)
	assert.Contains(t, out, "data:application/pdf;base64,Y2VydA==")
	assert.Contains(t, out, "data:image/jpeg;base64,YQ==")
	assert.Contains(t, out, "data:image/jpeg;base64,Yg==")
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestHTML_ProfilePage_NoFiles(t *testing.T) {
	h := NewHTML("€")

	page, err := h.ProfilePage(&profile.Profile{Name: "Шарик", Description: "без файлов"})
	require.NoError(t, err)
	out := string(page)

	assert.Contains(t, out, "Шарик")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "Сертификат")
}

func TestHTML_EscapesUserText(t *testing.T) {
	h := NewHTML("€")

	page, err := h.ProfilePage(&profile.Profile{
		Name:        "<script>alert(1)</script>",
		Description: "desc",
	})
	require.NoError(t, err)

	assert.NotContains(t, string(page), "<script>")
}
