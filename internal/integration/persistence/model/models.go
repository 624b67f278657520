package model

// All returns every model managed by schema migrations.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&GroupModel{},
		&TransactionIncomeModel{},
		&TransactionExpenseModel{},
		&TransactionBenefitModel{},
	}
}
