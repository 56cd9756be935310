package entity

// Operator persona que crea o recoge traslados. PINHash es bcrypt.
type Operator struct {
	ID      string
	Name    string
	Store   string
	PINHash string
}
