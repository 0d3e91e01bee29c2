package skill

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EscoID      string `json:"escoId"`
}

type Occupation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
