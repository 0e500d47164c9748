package entity

import "time"

type AccountType string

const (
	AccountTypeUser AccountType = "user"
	AccountTypeOrg  AccountType = "org"
)

// User is the signed-in identity returned by the login exchange. It is also
// the record persisted by the credential store.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	AccessToken string     `json:"accessToken"`
	Accounts    []*Account `json:"accounts"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Account is an org membership of a user. Type is the role the user holds
// under that key.
type Account struct {
	Key       string      `json:"key"`
	Name      string      `json:"name"`
	AvatarURL string      `json:"avatarUrl,omitempty"`
	Type      AccountType `json:"type"`
}
