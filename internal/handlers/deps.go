package handlers

import "context"

// PageInvalidator derruba o cache da página pública depois de uma
// mutação de catálogo (barbearia, serviços, barbeiros, agendamentos)
type PageInvalidator interface {
	InvalidateShop(ctx context.Context, slug string) error
}
