package domain

type Department struct {
	ID          int    `json:"department_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Category struct {
	ID           int    `json:"category_id"`
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}
