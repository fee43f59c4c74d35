package session_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/session"
)

var Module = fx.Provide(provideRegistry)

func provideRegistry() *session.Registry {
	return session.InitRegistry()
}
