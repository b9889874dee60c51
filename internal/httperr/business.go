package httperr

import "errors"

// BusinessError representa condição de negócio esperada (horário
// tomado, barbeiro sem disponibilidade...). O core nunca entrega panic
// para essas condições: tudo vira BusinessError tipado.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código, ou "" se não for erro de negócio
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
