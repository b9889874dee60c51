package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos. O Customer é sempre
// resolvido pelo telefone normalizado dentro da barbearia: "(11)
// 98765-4321" e "11987654321" são o mesmo cliente.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasMinPhoneDigits: telefone útil para busca precisa de ao menos 10
// dígitos (DDD + número)
func HasMinPhoneDigits(normalized string) bool {
	return len(normalized) >= 10
}
