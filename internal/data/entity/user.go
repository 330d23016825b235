package entity

// User is a ticket buyer. NIC (national ID) is the natural key used to
// deduplicate users across bookings; the numeric ID is assigned by the
// store the first time the user books.
type User struct {
	ID    int64
	Name  string
	NIC   string
	Email string
}
