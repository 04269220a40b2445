package model

// User is the opaque record the identity provider hands back. The provider
// owns credentials; we only ever see the email.
type User struct {
	Email string `json:"email"`
}
