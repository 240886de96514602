package models

// User is a staff account. Patients are records, not accounts; every caller
// of the API holds one of the staff roles in constvars.
type User struct {
	ID        string `bson:"_id,omitempty"`
	FullName  string `bson:"fullName"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}
