package sweep_completions

// Response результат прохода
type Response struct {
	Today     string  `json:"today"`
	Completed int     `json:"completed"`
	IDs       []int64 `json:"reservationIds"`
}
