package entity

// Sequence secuencia de ids legibles: Name es la fila del contador, Prefix el prefijo del id.
type Sequence struct {
	Name   string
	Prefix string
}

var (
	SequenceUsers     = Sequence{Name: "users", Prefix: "USR"}
	SequenceCustomers = Sequence{Name: "customers", Prefix: "CUST"}
	SequenceSuppliers = Sequence{Name: "suppliers", Prefix: "SUPP"}
)
