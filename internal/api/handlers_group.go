package api

import "PortalPiloto/internal/api/handler"

// HandlersGroup reúne os handlers já inicializados
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	TipHandler        *handler.TipHandler
	GenerationHandler *handler.GenerationHandler
	SponsorHandler    *handler.SponsorHandler
	DonationHandler   *handler.DonationHandler
	MediaHandler      *handler.MediaHandler
}
