package domain

// User represents a registered account. The email address is the unique key
// and doubles as the identity carried in issued credentials.
type User struct {
	Email          string  `json:"email"`
	HashedPassword string  `json:"-"` // Never expose the bcrypt hash in JSON
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	DateOfBirth    *string `json:"dob"` // Normalized YYYY-MM-DD, nil until set
	Address        *string `json:"address"`
}

// NewUser creates a User for registration with the given email and password
// hash. Profile fields start empty and are filled in later via profile update.
func NewUser(email, hashedPassword string) (*User, error) {
	user := &User{
		Email:          email,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User carries the fields required for persistence.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// ProfileUpdate carries the validated, normalized fields of a profile update.
// DateOfBirth is always in zero-padded YYYY-MM-DD form.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Address     string
}
