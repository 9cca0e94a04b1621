package entity

// Company representa la empresa de un EMPLOYER (relación 1:1 con el usuario).
// Se crea en la misma transacción que su usuario dueño y no se elimina.
type Company struct {
	ID       int64
	UserID   int64
	Name     string
	NIT      *string // NIT colombiano, opcional
	Website  *string
	Location *string
	LogoURL  *string
}
