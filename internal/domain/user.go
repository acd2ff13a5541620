package domain

// User is the account profile as served by the options endpoints.
type User struct {
	ID         string
	Email      string
	Nickname   string
	FirstName  string
	LastName   string
	Address    string
	City       string
	PostalCode string
	Province   string
	Country    string
}

// DisplayName prefers the full name and falls back to the nickname.
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Email
}

type WeekStart string

const (
	WeekStartMonday WeekStart = "monday"
	WeekStartSunday WeekStart = "sunday"
)

// Settings holds the user preferences stored server-side.
type Settings struct {
	CalendarWeekStart WeekStart
}
