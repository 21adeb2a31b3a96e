package domain

type Customer struct {
	ID          int32   `json:"id"`
	FullName    string  `json:"full_name"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}
