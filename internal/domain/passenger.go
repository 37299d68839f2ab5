package domain

type Passenger struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Age    int    `json:"age"`
}
