package types

// PasswordOptions controls which character classes a generated password
// draws from.
type PasswordOptions struct {
	Length int  `validate:"min=1,max=255"`
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// DefaultPasswordOptions returns a 16 character password using every class.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: 16, Upper: true, Lower: true, Number: true, Symbol: true}
}
