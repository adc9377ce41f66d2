package entity

// Admin is the single administrative account of a deployment.
type Admin struct {
	Username string
	Password string
	Address  string
}

// DefaultAdmin is the bootstrap account written when admin.txt is absent or empty.
func DefaultAdmin() *Admin {
	return &Admin{Username: "admin", Password: "123", Address: "B1 1AB"}
}

func (a *Admin) CredentialsMatch(username, password string) bool {
	return a.Username == username && a.Password == password
}
