package profile

// ProfileRepository defines persistence for farm profiles
type ProfileRepository interface {
	Create(p *Profile) error
	GetByID(id string) (*Profile, error)
	GetByPhone(phone string) (*Profile, error)
	PhoneExists(phone string) (bool, error)
	Update(id string, updates UpdateProfileRequest) (*Profile, error)
	Delete(id string) error
}
