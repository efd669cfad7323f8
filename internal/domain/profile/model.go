package profile

// FileRecord - файл, встроенный в профиль как data-URL
type FileRecord struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

type Profile struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Certificate *FileRecord  `json:"certificate,omitempty"`
	Photos      []FileRecord `json:"photos"`
}

// HasPhotos сообщает, есть ли у профиля хотя бы одно фото
func (p *Profile) HasPhotos() bool {
	return len(p.Photos) > 0
}

// FirstPhoto возвращает первое фото профиля (в порядке выбора файлов)
func (p *Profile) FirstPhoto() (FileRecord, bool) {
	if len(p.Photos) == 0 {
		return FileRecord{}, false
	}
	return p.Photos[0], true
}
