package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Customer struct {
	CustomerID uuid.UUID
	Name       string
	Balance    Money
}

func NewCustomer(name string, balance Money) (Customer, error) {
	if name == "" {
		return Customer{}, fmt.Errorf("customer name is empty")
	}
	if balance.IsNegative() {
		return Customer{}, fmt.Errorf("customer %q: balance is negative", name)
	}
	return Customer{CustomerID: uuid.New(), Name: name, Balance: balance}, nil
}

// Debit subtracts amount from the balance. The balance never goes
// negative; callers must verify sufficiency before settlement.
func (c *Customer) Debit(amount Money) error {
	res, err := c.Balance.Cmp(amount)
	if err != nil {
		return err
	}
	if res < 0 {
		return InvalidOperationf("Insufficient balance")
	}
	c.Balance, err = c.Balance.Sub(amount)
	if err != nil {
		return err
	}
	return nil
}
