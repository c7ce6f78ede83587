package entity

// Actor identidad opaca de quien ejecuta una operación (tomada del token).
// El dominio no la valida ni la emite; solo la registra en el historial.
type Actor struct {
	ID          string
	Email       string
	DisplayName string
}
