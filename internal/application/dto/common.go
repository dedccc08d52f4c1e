package dto

// Response es el sobre estándar de la API:
// {success, count?, data?, message?, error?, errors?[]}.
type Response struct {
	Success bool     `json:"success"`
	Count   *int     `json:"count,omitempty"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKCount construye una respuesta exitosa de listado con conteo.
func OKCount(count int, data any) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// OKMessage construye una respuesta exitosa con solo un mensaje.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// Err construye una respuesta de error.
func Err(message string) Response {
	return Response{Success: false, Error: message}
}

// ErrFields construye una respuesta de error de validación con mensajes por campo.
func ErrFields(message string, fields []string) Response {
	return Response{Success: false, Error: message, Errors: fields}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Defaults aplica valores por defecto si Page/Limit no vienen.
func (p *PageRequest) Defaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
}

// Offset calcula el offset SQL de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
