package entity

// Customer representa un cliente de un usuario (retailer).
type Customer struct {
	ID         string
	CustomerID string // CUST0001
	Party
	Audit
}

// CustomerPatch actualización parcial de cliente.
type CustomerPatch struct {
	PartyPatch
}
