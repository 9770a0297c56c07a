package dto

// GenerateSampleDataRequest controls how much demo history to seed
type GenerateSampleDataRequest struct {
	Months int `json:"months" validate:"omitempty,min=1,max=24"`
}

// SampleDataResponse reports how many demo records were created
type SampleDataResponse struct {
	ExpensesCreated int `json:"expensesCreated"`
	IncomeCreated   int `json:"incomeCreated"`
}
