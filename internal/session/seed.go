package session

import "github.com/srivalli27/dhanai/internal/model"

// seedSpec is one entry of a mock ledger. Ids and dates are assigned at
// seeding time; everything else is fixed so each mode always yields the same
// set by shape.
type seedSpec struct {
	description string
	category    string
	explanation string
	direction   model.TransactionDirection
	amount      float64
	daysAgo     int
}

var personalSeeds = []seedSpec{
	{description: "Salary Credit - July", amount: 55000, direction: model.DirectionCredit, category: "Income", explanation: "Monthly salary credited to the account.", daysAgo: 1},
	{description: "Swiggy Order #8821", amount: 450, direction: model.DirectionDebit, category: "Food", explanation: "Food delivery from Swiggy.", daysAgo: 1},
	{description: "Uber Ride - Airport", amount: 640, direction: model.DirectionDebit, category: "Travel", explanation: "Cab ride booked through Uber.", daysAgo: 2},
	{description: "Amazon Purchase - Headphones", amount: 2499, direction: model.DirectionDebit, category: "Shopping", explanation: "Online purchase from Amazon.", daysAgo: 3},
	{description: "BESCOM Electricity Bill", amount: 1850, direction: model.DirectionDebit, category: "Bills", explanation: "Monthly electricity bill payment.", daysAgo: 4},
	{description: "Netflix Subscription", amount: 649, direction: model.DirectionDebit, category: "Entertainment", explanation: "Monthly streaming subscription.", daysAgo: 5},
	{description: "Apollo Pharmacy", amount: 780, direction: model.DirectionDebit, daysAgo: 6},
	{description: "Zerodha SIP - Nifty Index", amount: 5000, direction: model.DirectionDebit, category: "Investment", explanation: "Systematic investment plan installment.", daysAgo: 7},
	{description: "PVR Cinemas - Tickets", amount: 900, direction: model.DirectionDebit, daysAgo: 8},
}

var businessSeeds = []seedSpec{
	{description: "Client Payment #INV001 - TechCorp", amount: 120000, direction: model.DirectionCredit, category: "Revenue", explanation: "Invoice payment received from TechCorp.", daysAgo: 1},
	{description: "Client Payment #INV002 - Innovate LLP", amount: 85000, direction: model.DirectionCredit, category: "Revenue", explanation: "Invoice payment received from Innovate LLP.", daysAgo: 2},
	{description: "Staff Salaries - July", amount: 150000, direction: model.DirectionDebit, category: "Salaries", explanation: "Monthly payroll disbursement.", daysAgo: 2},
	{description: "Office Rent - Koramangala", amount: 40000, direction: model.DirectionDebit, category: "Rent", explanation: "Monthly office rent.", daysAgo: 3},
	{description: "Client Payment #INV003 - TechCorp", amount: 95000, direction: model.DirectionCredit, category: "Revenue", explanation: "Invoice payment received from TechCorp.", daysAgo: 4},
	{description: "GST Payment Q1", amount: 27000, direction: model.DirectionDebit, category: "Taxes", explanation: "Quarterly GST remittance.", daysAgo: 5},
	{description: "AWS Invoice - July", amount: 18000, direction: model.DirectionDebit, category: "Software", explanation: "Cloud infrastructure invoice.", daysAgo: 6},
	{description: "Google Ads Campaign", amount: 12000, direction: model.DirectionDebit, daysAgo: 7},
	{description: "Courier - Bulk Dispatch", amount: 4300, direction: model.DirectionDebit, daysAgo: 8},
}

// seedTransactionsLocked materializes the mock ledger for a mode, assigning
// fresh ids and recent dates. Caller holds the lock.
func (s *Store) seedTransactionsLocked(mode model.Mode) []model.Transaction {
	specs := personalSeeds
	if mode == model.ModeBusiness {
		specs = businessSeeds
	}

	transactions := make([]model.Transaction, 0, len(specs))
	for _, spec := range specs {
		status := model.StatusUncategorized
		if spec.category != "" {
			status = model.StatusCategorizedAI
		}
		transactions = append(transactions, model.Transaction{
			ID:          s.nextIDLocked(),
			Description: spec.description,
			Amount:      spec.amount,
			Direction:   spec.direction,
			Date:        s.now().AddDate(0, 0, -spec.daysAgo).Format(model.DateLayout),
			Category:    spec.category,
			Explanation: spec.explanation,
			Status:      status,
		})
	}
	return transactions
}

// Mandates returns the display-only autopay mandates.
func Mandates() []model.AutoPayMandate {
	return []model.AutoPayMandate{
		{ID: 1, Vendor: "Jio Fiber", Amount: 999, Frequency: "Monthly", NextPaymentDate: "5th of every month"},
		{ID: 2, Vendor: "LIC Premium", Amount: 2450, Frequency: "Monthly", NextPaymentDate: "12th of every month"},
		{ID: 3, Vendor: "Spotify", Amount: 119, Frequency: "Monthly", NextPaymentDate: "18th of every month"},
	}
}

// EMIs returns the display-only EMI commitments for a mode.
func EMIs(mode model.Mode) []model.EMIDetails {
	if mode == model.ModeBusiness {
		return []model.EMIDetails{
			{ID: 1, LoanName: "Business Expansion Loan", Bank: "HDFC Bank", TotalAmount: 2500000, Principal: 2000000, InterestRate: 11.5, TenureMonths: 60, EMIAmount: 43990, NextDueDate: "7th of every month"},
			{ID: 2, LoanName: "Equipment Finance", Bank: "ICICI Bank", TotalAmount: 800000, Principal: 700000, InterestRate: 10.2, TenureMonths: 36, EMIAmount: 22640, NextDueDate: "15th of every month"},
		}
	}
	return []model.EMIDetails{
		{ID: 1, LoanName: "Home Loan", Bank: "SBI", TotalAmount: 4200000, Principal: 3500000, InterestRate: 8.6, TenureMonths: 240, EMIAmount: 30640, NextDueDate: "3rd of every month"},
		{ID: 2, LoanName: "Two-Wheeler Loan", Bank: "Axis Bank", TotalAmount: 145000, Principal: 120000, InterestRate: 9.8, TenureMonths: 24, EMIAmount: 5530, NextDueDate: "20th of every month"},
	}
}
