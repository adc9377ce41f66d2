package entity

// Person holds the naming and credential fields shared by admins and doctors.
type Person struct {
	FirstName string
	Surname   string
	Username  string
	Password  string
}

// FullName is the identity key used throughout persistence and matching.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.Surname
}

// CredentialsMatch compares a login attempt against the stored plaintext.
func (p *Person) CredentialsMatch(username, password string) bool {
	return p.Username == username && p.Password == password
}
