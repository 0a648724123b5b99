package domain

// ExternalProfile holds the attributes the identity provider returned for a
// successful federated login.
type ExternalProfile struct {
	Subject string
	Email   string
	Name    string
}
