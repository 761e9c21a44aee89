package dto

// OtherNumber is a secondary contact number of an admin or a customer.
type OtherNumber struct {
	Number string `json:"number" validate:"required,phone"`
}

// OtherNumbersFrom collects numbers into their wire shape. It never returns nil.
func OtherNumbersFrom(numbers []string) []OtherNumber {
	res := make([]OtherNumber, len(numbers))

	for i, number := range numbers {
		res[i].Number = number
	}

	return res
}
