package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type QuickLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserDTO struct {
	Email  string `json:"email"`
	Tenant string `json:"tenant"`
	Role   string `json:"role"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	ExpiresIn    int64           `json:"expires_in"`
	User         UserDTO         `json:"user"`
	Subscription SubscriptionDTO `json:"subscription"`
}

type SessionResponse struct {
	User             UserDTO         `json:"user"`
	Subscription     SubscriptionDTO `json:"subscription"`
	UpgradeAvailable bool            `json:"upgrade_available"`
}

// DemoAccountDTO is one entry of the login screen's test account list
type DemoAccountDTO struct {
	Email  string `json:"email"`
	Tenant string `json:"tenant"`
	Role   string `json:"role"`
}
