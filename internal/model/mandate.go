package model

// AutoPayMandate is a recurring autopay commitment. Display-only: mandates
// are never executed or mutated.
type AutoPayMandate struct {
	Vendor          string
	Frequency       string
	NextPaymentDate string
	ID              int64
	Amount          float64
}

// EMIDetails describes a fixed periodic loan repayment. Display-only.
type EMIDetails struct {
	LoanName     string
	Bank         string
	NextDueDate  string
	ID           int64
	TotalAmount  float64
	Principal    float64
	InterestRate float64
	TenureMonths int
	EMIAmount    float64
}
