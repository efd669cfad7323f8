package account

// Directory - представление загруженной коллекции аккаунтов в памяти
type Directory struct {
	accounts []Account
}

func NewDirectory(accounts []Account) *Directory {
	return &Directory{accounts: accounts}
}

// FindByIdentifier ищет аккаунт линейным проходом. Совпадение точное,
// по уже нормализованному идентификатору.
func (d *Directory) FindByIdentifier(identifier string) (*Account, bool) {
	for idx := range d.accounts {
		if d.accounts[idx].Identifier == identifier {
			return &d.accounts[idx], true
		}
	}
	return nil, false
}
