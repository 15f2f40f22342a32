package model

// User represents an account in the mock fleet.
// Code is the primary key; the store guarantees the entry key and the
// Code field agree by construction.
type User struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Language    string  `json:"language"`
	Nationality string  `json:"nationality"`
	PhoneNumber string  `json:"phone_number"`
	Car         Vehicle `json:"car"`
}
