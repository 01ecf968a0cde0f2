package pagination

// Sort keys accepted by the list endpoints, mapped to table-qualified columns.
// Both storage adapters query the real table names, so these are valid for either.
var (
	ClientSortColumns = SortColumns{
		"id":        "clients.client_id",
		"name":      "clients.name",
		"phone":     "clients.phone",
		"address":   "clients.address",
		"createdAt": "clients.created_at",
	}

	DebtSortColumns = SortColumns{
		"id":              "debts.debt_id",
		"date":            "debts.debt_date",
		"debtAmount":      "debts.debt_amount",
		"paidAmount":      "debts.paid_amount",
		"remainingAmount": "debts.remaining_amount",
		"clientId":        "debts.client_id",
		"createdAt":       "debts.created_at",
	}

	PaymentSortColumns = SortColumns{
		"id":           "payments.payment_id",
		"amount":       "payments.amount",
		"paymentDate":  "payments.payment_date",
		"debtId":       "payments.debt_id",
		"createdAt":    "payments.created_at",
		"dateCreation": "payments.created_at",
	}
)
