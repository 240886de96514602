package responses

type Login struct {
	Token    string `json:"token"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
